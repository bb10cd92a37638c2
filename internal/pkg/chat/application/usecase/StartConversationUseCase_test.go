package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
)

func TestStartConversationHappyPath(t *testing.T) {
	req := require.New(t)

	other := "bob"
	repo := &fakeChatRepository{
		createID: 100,
		summary: chat.ConversationSummary{
			ID:            100,
			OtherUserID:   2,
			OtherUsername: other,
		},
	}
	uc := NewStartConversationUseCase(repo)

	summary, err := uc.Execute(context.Background(), StartConversationInput{UserID: 1, OtherUserID: 2})
	req.NoError(err)
	req.Equal(int64(100), summary.ID)
	req.Equal("bob", summary.OtherUsername)
	req.Equal(1, repo.createCalls)
}

func TestStartConversationRejectsSelfChat(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{}
	uc := NewStartConversationUseCase(repo)

	_, err := uc.Execute(context.Background(), StartConversationInput{UserID: 1, OtherUserID: 1})
	req.ErrorIs(err, ErrValidation)
	req.Zero(repo.createCalls)
}

func TestStartConversationRejectsMissingIDs(t *testing.T) {
	req := require.New(t)

	uc := NewStartConversationUseCase(&fakeChatRepository{})

	_, err := uc.Execute(context.Background(), StartConversationInput{UserID: 1})
	req.ErrorIs(err, ErrValidation)

	_, err = uc.Execute(context.Background(), StartConversationInput{OtherUserID: 2})
	req.ErrorIs(err, ErrValidation)
}

func TestStartConversationPersistenceFailure(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{createErr: errors.New("deadlock detected")}
	uc := NewStartConversationUseCase(repo)

	_, err := uc.Execute(context.Background(), StartConversationInput{UserID: 1, OtherUserID: 2})
	req.ErrorIs(err, ErrPersistence)
}

func TestStartConversationDoesNotDedupe(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{createID: 100, summary: chat.ConversationSummary{ID: 100}}
	uc := NewStartConversationUseCase(repo)

	_, err := uc.Execute(context.Background(), StartConversationInput{UserID: 1, OtherUserID: 2})
	req.NoError(err)
	_, err = uc.Execute(context.Background(), StartConversationInput{UserID: 1, OtherUserID: 2})
	req.NoError(err)
	req.Equal(2, repo.createCalls)
}
