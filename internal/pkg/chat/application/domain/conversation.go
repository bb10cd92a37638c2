package chat

import (
	"errors"
	"time"
)

// Domain-level errors for chat behaviors
var (
	ErrNotMember    = errors.New("chat: sender is not a member of the conversation")
	ErrEmptyContent = errors.New("chat: message content is empty")
	ErrSelfChat     = errors.New("chat: a conversation needs two distinct users")
)

// Conversation is a two-party messaging thread. Name is nullable: direct
// conversations carry no display name.
type Conversation struct {
	ID        int64     `db:"id"`
	Name      *string   `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Membership associates one user with one conversation.
// Primary key: (ConversationID, UserID). Immutable after creation.
type Membership struct {
	ConversationID int64     `db:"conversation_id"`
	UserID         int64     `db:"user_id"`
	JoinedAt       time.Time `db:"joined_at"`
}

// ConversationSummary is a conversation as seen by one member: the caller's
// own join date plus the other member's identity and join date.
type ConversationSummary struct {
	ID            int64     `json:"id"`
	Name          *string   `json:"name"`
	JoinedAt      time.Time `json:"joined_at"`
	OtherUserID   int64     `json:"other_user_id"`
	OtherUsername string    `json:"other_username"`
	OtherJoinedAt time.Time `json:"other_joined_at"`
}
