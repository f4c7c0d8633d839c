package dbmysql

import (
	"time"

	"gochat/internal/common"
)

// ChatReplica is the message service's copy of a chat-service chat.
type ChatReplica struct {
	ChatID    int64               `gorm:"primaryKey;column:chat_id;autoIncrement:false" json:"chat_id"`
	Type      common.ChatType     `gorm:"column:type;size:16;not null" json:"type"`
	Name      string              `gorm:"column:name;size:100" json:"name"`
	Avatar    string              `gorm:"column:avatar;size:255" json:"avatar"`
	Members   []ChatReplicaMember `gorm:"foreignKey:ChatID;references:ChatID;constraint:OnDelete:CASCADE" json:"members"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ChatReplica) TableName() string { return "chat_replicas" }

type ChatReplicaMember struct {
	ChatID int64 `gorm:"primaryKey;column:chat_id;autoIncrement:false" json:"chat_id"`
	UserID int64 `gorm:"primaryKey;column:user_id;autoIncrement:false;index" json:"user_id"`
}

func (ChatReplicaMember) TableName() string { return "chat_replica_members" }

// MemberIDs flattens the member rows.
func (c *ChatReplica) MemberIDs() []int64 {
	ids := make([]int64, 0, len(c.Members))
	for _, m := range c.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// HasMember reports whether userID is in the replicated member list.
func (c *ChatReplica) HasMember(userID int64) bool {
	for _, m := range c.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
