package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	repository "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/port"
)

// Deliverer pushes a persisted message to the live connections of the
// recipient set. Implementations never block on a slow recipient and never
// report push failures to the caller.
type Deliverer interface {
	Deliver(msg chat.Message, recipientIDs []int64)
}

// PostMessageInput carries the data needed to post a new message.
type PostMessageInput struct {
	ConversationID int64
	SenderID       int64
	Content        string
}

// PostMessageUseCase persists a message and hands it to delivery.
//
// Ordering is strict: the message is durably stored before any push is
// attempted, and nothing that happens during delivery can unwind the commit.
// The operation is successful once persistence succeeds.
type PostMessageUseCase struct {
	Repo       repository.ChatRepository
	Dispatcher Deliverer
	Log        zerolog.Logger
}

func NewPostMessageUseCase(repo repository.ChatRepository, dispatcher Deliverer, log zerolog.Logger) *PostMessageUseCase {
	return &PostMessageUseCase{Repo: repo, Dispatcher: dispatcher, Log: log}
}

// Execute validates input, checks sender membership, persists the message and
// then fans it out to the other members' live connections.
func (uc *PostMessageUseCase) Execute(ctx context.Context, in PostMessageInput) (*chat.Message, error) {
	if in.ConversationID <= 0 || in.SenderID <= 0 {
		return nil, fmt.Errorf("%w: conversation id and sender id are required", ErrValidation)
	}
	content, err := chat.NormalizeContent(in.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Membership is checked here, not in the store: AppendMessage documents
	// it as a caller precondition.
	isMember, err := uc.Repo.IsMember(ctx, in.ConversationID, in.SenderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !isMember {
		return nil, chat.ErrNotMember
	}

	id, err := uc.Repo.AppendMessage(ctx, in.ConversationID, in.SenderID, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// The message is committed: from here on failures are warnings, never
	// errors surfaced to the sender, or a retry would store a duplicate.
	msg, err := uc.Repo.GetMessage(ctx, id)
	if err != nil {
		uc.Log.Warn().Err(err).
			Int64("conversation_id", in.ConversationID).
			Int64("message_id", id).
			Msg("could not read back committed message, skipping live delivery")
		return &chat.Message{
			ID:             id,
			ConversationID: in.ConversationID,
			SenderID:       in.SenderID,
			Content:        content,
		}, nil
	}

	recipients, err := uc.Repo.ListOtherMembers(ctx, in.ConversationID, in.SenderID)
	if err != nil {
		uc.Log.Warn().Err(err).
			Int64("conversation_id", in.ConversationID).
			Int64("message_id", id).
			Msg("could not compute recipients, skipping live delivery")
		return &msg, nil
	}

	if uc.Dispatcher != nil {
		uc.Dispatcher.Deliver(msg, recipients)
	}
	return &msg, nil
}
