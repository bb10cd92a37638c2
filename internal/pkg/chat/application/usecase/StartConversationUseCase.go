package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	repository "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/port"
)

// StartConversationInput carries the two participants of a new conversation.
type StartConversationInput struct {
	UserID      int64
	OtherUserID int64
}

// StartConversationUseCase opens a direct conversation between two users.
// No dedupe is attempted: calling twice creates two conversations, matching
// the storage contract (retry only after re-checking existence).
type StartConversationUseCase struct {
	Repo repository.ChatRepository
}

func NewStartConversationUseCase(repo repository.ChatRepository) *StartConversationUseCase {
	return &StartConversationUseCase{Repo: repo}
}

// Execute creates the conversation with both memberships atomically and
// returns the summary from the caller's point of view.
func (uc *StartConversationUseCase) Execute(ctx context.Context, in StartConversationInput) (*chat.ConversationSummary, error) {
	if in.UserID <= 0 || in.OtherUserID <= 0 {
		return nil, fmt.Errorf("%w: both user ids are required", ErrValidation)
	}
	if in.UserID == in.OtherUserID {
		return nil, fmt.Errorf("%w: %v", ErrValidation, chat.ErrSelfChat)
	}

	id, err := uc.Repo.CreateConversation(ctx, in.UserID, in.OtherUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	summary, err := uc.Repo.GetConversation(ctx, in.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &summary, nil
}
