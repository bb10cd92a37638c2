package usecase

import (
	"context"
	"fmt"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	repository "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/port"
)

// ListMessagesInput carries parameters to fetch messages of a conversation.
type ListMessagesInput struct {
	ConversationID int64
	Limit          int
	Offset         int
}

// ListMessagesUseCase fetches a conversation's history, oldest first.
type ListMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewListMessagesUseCase(repo repository.ChatRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

// Execute returns messages for the conversation honoring limit/offset.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, in ListMessagesInput) ([]chat.Message, error) {
	if in.ConversationID <= 0 {
		return nil, fmt.Errorf("%w: conversation id is required", ErrValidation)
	}
	msgs, err := uc.Repo.ListMessages(ctx, in.ConversationID, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
