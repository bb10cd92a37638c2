package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
)

func persistedMessage() chat.Message {
	return chat.Message{
		ID:             42,
		ConversationID: 7,
		SenderID:       1,
		SenderName:     "alice",
		Content:        "hello",
		SentAt:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPostMessageHappyPath(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{
		member:   true,
		appendID: 42,
		message:  persistedMessage(),
		others:   []int64{2},
	}
	dispatcher := &fakeDeliverer{}
	uc := NewPostMessageUseCase(repo, dispatcher, zerolog.Nop())

	msg, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       1,
		Content:        "hello",
	})
	req.NoError(err)
	req.Equal(int64(42), msg.ID)
	req.Equal("alice", msg.SenderName)

	req.Equal([]string{"hello"}, repo.appended)
	req.Len(dispatcher.calls, 1)
	req.Equal([]int64{2}, dispatcher.calls[0].recipients)
	req.Equal(int64(42), dispatcher.calls[0].msg.ID)
}

func TestPostMessageTrimsContentBeforePersisting(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{member: true, appendID: 42, message: persistedMessage()}
	uc := NewPostMessageUseCase(repo, &fakeDeliverer{}, zerolog.Nop())

	_, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       1,
		Content:        "  hello  ",
	})
	req.NoError(err)
	req.Equal([]string{"hello"}, repo.appended)
}

func TestPostMessageRejectsBlankContent(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{member: true}
	uc := NewPostMessageUseCase(repo, &fakeDeliverer{}, zerolog.Nop())

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := uc.Execute(context.Background(), PostMessageInput{
			ConversationID: 7,
			SenderID:       1,
			Content:        content,
		})
		req.ErrorIs(err, ErrValidation)
	}
	req.Empty(repo.appended)
	req.Zero(repo.memberCalls)
}

func TestPostMessageRejectsMissingIDs(t *testing.T) {
	req := require.New(t)

	uc := NewPostMessageUseCase(&fakeChatRepository{}, &fakeDeliverer{}, zerolog.Nop())

	_, err := uc.Execute(context.Background(), PostMessageInput{SenderID: 1, Content: "hi"})
	req.ErrorIs(err, ErrValidation)

	_, err = uc.Execute(context.Background(), PostMessageInput{ConversationID: 7, Content: "hi"})
	req.ErrorIs(err, ErrValidation)
}

func TestPostMessageNonMemberIsRejectedBeforePersist(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{member: false}
	dispatcher := &fakeDeliverer{}
	uc := NewPostMessageUseCase(repo, dispatcher, zerolog.Nop())

	_, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       99,
		Content:        "hi",
	})
	req.ErrorIs(err, chat.ErrNotMember)
	req.Empty(repo.appended)
	req.Empty(dispatcher.calls)
}

func TestPostMessagePersistenceFailureSkipsDelivery(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{member: true, appendErr: errors.New("connection reset")}
	dispatcher := &fakeDeliverer{}
	uc := NewPostMessageUseCase(repo, dispatcher, zerolog.Nop())

	_, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       1,
		Content:        "hi",
	})
	req.ErrorIs(err, ErrPersistence)
	req.Empty(dispatcher.calls)
}

func TestPostMessageRecipientLookupFailureStillSucceeds(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{
		member:    true,
		appendID:  42,
		message:   persistedMessage(),
		othersErr: errors.New("connection reset"),
	}
	dispatcher := &fakeDeliverer{}
	uc := NewPostMessageUseCase(repo, dispatcher, zerolog.Nop())

	// The message committed before the fan-out set was computed, so the
	// sender still gets a success.
	msg, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       1,
		Content:        "hello",
	})
	req.NoError(err)
	req.Equal(int64(42), msg.ID)
	req.Empty(dispatcher.calls)
}

func TestPostMessageReadbackFailureStillSucceeds(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{
		member:    true,
		appendID:  42,
		getMsgErr: errors.New("connection reset"),
		others:    []int64{2},
	}
	dispatcher := &fakeDeliverer{}
	uc := NewPostMessageUseCase(repo, dispatcher, zerolog.Nop())

	// The append committed, so a failed readback must not surface an error
	// that would invite a duplicate-producing retry.
	msg, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       1,
		Content:        "  hello  ",
	})
	req.NoError(err)
	req.Equal(int64(42), msg.ID)
	req.Equal(int64(7), msg.ConversationID)
	req.Equal("hello", msg.Content)
	req.Empty(dispatcher.calls)
}

func TestPostMessageNilDispatcherStillPersists(t *testing.T) {
	req := require.New(t)

	repo := &fakeChatRepository{
		member:   true,
		appendID: 42,
		message:  persistedMessage(),
		others:   []int64{2},
	}
	uc := NewPostMessageUseCase(repo, nil, zerolog.Nop())

	msg, err := uc.Execute(context.Background(), PostMessageInput{
		ConversationID: 7,
		SenderID:       1,
		Content:        "hello",
	})
	req.NoError(err)
	req.Equal(int64(42), msg.ID)
	req.Equal([]string{"hello"}, repo.appended)
}
