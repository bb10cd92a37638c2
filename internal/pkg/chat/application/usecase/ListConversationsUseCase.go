package usecase

import (
	"context"
	"fmt"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	repository "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/port"
)

// ListConversationsInput wraps the caller's identity.
type ListConversationsInput struct {
	UserID int64
}

// ListConversationsUseCase is a pass-through read of the caller's
// conversations, most recently joined first.
type ListConversationsUseCase struct {
	Repo repository.ChatRepository
}

func NewListConversationsUseCase(repo repository.ChatRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, in ListConversationsInput) ([]chat.ConversationSummary, error) {
	if in.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	summaries, err := uc.Repo.ListConversationsForUser(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return summaries, nil
}
