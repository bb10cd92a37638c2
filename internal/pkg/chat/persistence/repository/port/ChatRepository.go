package repository

import (
	"context"
	"errors"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
)

// ErrNotFound signals that a referenced conversation or message does not
// exist, or that the caller is not a member of it. Adapters map their
// backend's no-rows condition to this sentinel.
var ErrNotFound = errors.New("chat repository: not found")

// ChatRepository defines persistence operations for the chat domain.
//
// CreateConversation is the only multi-statement transaction; every other
// operation is a single atomic statement. No operation retries internally.
// AppendMessage does not verify that senderID is a member — callers check
// membership first via IsMember (documented precondition).
type ChatRepository interface {
	// CreateConversation inserts a conversation row plus one membership row
	// per user in a single transaction and returns the new conversation id.
	// On any failure the transaction rolls back and no partial state remains.
	CreateConversation(ctx context.Context, userA, userB int64) (int64, error)

	// ListConversationsForUser returns the caller's conversations ordered by
	// the caller's join date, most recent first.
	ListConversationsForUser(ctx context.Context, userID int64) ([]chat.ConversationSummary, error)

	// GetConversation returns a single summary, or ErrNotFound if the user
	// is not a member of the conversation.
	GetConversation(ctx context.Context, userID, conversationID int64) (chat.ConversationSummary, error)

	// AppendMessage inserts one message row with a server-generated timestamp
	// and returns its id.
	AppendMessage(ctx context.Context, conversationID, senderID int64, content string) (int64, error)

	// GetMessage returns the full message record, or ErrNotFound.
	GetMessage(ctx context.Context, messageID int64) (chat.Message, error)

	// ListMessages returns messages ordered by sentAt ascending, ties broken
	// by id ascending. A non-positive limit returns the full history; limit
	// and offset only apply when the caller paginates explicitly.
	ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]chat.Message, error)

	// ListOtherMembers returns the user ids of every member of the
	// conversation except excludingUserID (the delivery fan-out set).
	ListOtherMembers(ctx context.Context, conversationID, excludingUserID int64) ([]int64, error)

	// IsMember reports whether userID belongs to the conversation.
	IsMember(ctx context.Context, conversationID, userID int64) (bool, error)
}
