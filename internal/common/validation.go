package common

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxContentLength  = 4096
	MaxReactionLength = 32
)

// ValidateContent checks a message body before it is stored.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return Validation("message content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return Validation("message content is longer than %d characters", MaxContentLength)
	}
	return nil
}

// NormalizeReaction checks a reaction label such as an emoji or a short code
// and returns it trimmed, so " 👍" and "👍" are the same reaction.
func NormalizeReaction(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", Validation("reaction cannot be empty")
	}
	if utf8.RuneCountInString(label) > MaxReactionLength {
		return "", Validation("reaction is longer than %d characters", MaxReactionLength)
	}
	if strings.ContainsAny(label, ".$") {
		return "", Validation("reaction cannot contain '.' or '$'")
	}
	return label, nil
}
