package chat

import (
	"strings"
	"time"
)

// Message is an immutable log entry in a conversation. SenderName is joined
// in from the users table so live-pushed and history-fetched records share
// the same shape.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sent_at"`
}

// NormalizeContent trims surrounding whitespace and rejects empty content.
func NormalizeContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	return trimmed, nil
}
