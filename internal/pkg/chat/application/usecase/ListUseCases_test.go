package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
)

func TestListConversationsValidatesUserID(t *testing.T) {
	uc := NewListConversationsUseCase(&fakeChatRepository{})
	_, err := uc.Execute(context.Background(), ListConversationsInput{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestListConversationsReturnsSummaries(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{summaries: []chat.ConversationSummary{{ID: 100}, {ID: 99}}}
	uc := NewListConversationsUseCase(repo)

	summaries, err := uc.Execute(context.Background(), ListConversationsInput{UserID: 1})
	req.NoError(err)
	req.Len(summaries, 2)
	req.Equal(int64(100), summaries[0].ID)
}

func TestListMessagesValidatesConversationID(t *testing.T) {
	uc := NewListMessagesUseCase(&fakeChatRepository{})
	_, err := uc.Execute(context.Background(), ListMessagesInput{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestListMessagesReturnsHistory(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{messages: []chat.Message{{ID: 1}, {ID: 2}}}
	uc := NewListMessagesUseCase(repo)

	msgs, err := uc.Execute(context.Background(), ListMessagesInput{ConversationID: 7, Limit: 50})
	req.NoError(err)
	req.Len(msgs, 2)
	req.Equal(int64(1), msgs[0].ID)
}
