package common

// ChatType mirrors the chat service's chat kinds.
type ChatType string

const (
	ChatTypeGroup   ChatType = "group"
	ChatTypePrivate ChatType = "private"
	ChatTypeSaved   ChatType = "saved"
)

// String returns the string representation
func (ct ChatType) String() string {
	return string(ct)
}

// IsValid checks if the chat type is one the chat service emits
func (ct ChatType) IsValid() bool {
	return ct == ChatTypeGroup || ct == ChatTypePrivate || ct == ChatTypeSaved
}

// PresenceStatus is what clients see for a user.
type PresenceStatus string

const (
	StatusOnline  PresenceStatus = "online"
	StatusOffline PresenceStatus = "offline"
)

func (ps PresenceStatus) String() string {
	return string(ps)
}

// ParsePresenceStatus treats anything other than "online" as offline.
func ParsePresenceStatus(raw string) PresenceStatus {
	if raw == string(StatusOnline) {
		return StatusOnline
	}
	return StatusOffline
}
