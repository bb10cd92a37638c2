package usecase

import (
	"context"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
)

// fakeChatRepository is an in-memory scriptable repository double.
type fakeChatRepository struct {
	member       bool
	memberErr    error
	memberCalls  int
	appendID     int64
	appendErr    error
	appended     []string
	message      chat.Message
	getMsgErr    error
	others       []int64
	othersErr    error
	createID     int64
	createErr    error
	createCalls  int
	summary      chat.ConversationSummary
	summaryErr   error
	summaries    []chat.ConversationSummary
	summariesErr error
	messages     []chat.Message
	messagesErr  error
}

func (f *fakeChatRepository) CreateConversation(_ context.Context, _, _ int64) (int64, error) {
	f.createCalls++
	return f.createID, f.createErr
}

func (f *fakeChatRepository) ListConversationsForUser(_ context.Context, _ int64) ([]chat.ConversationSummary, error) {
	return f.summaries, f.summariesErr
}

func (f *fakeChatRepository) GetConversation(_ context.Context, _, _ int64) (chat.ConversationSummary, error) {
	return f.summary, f.summaryErr
}

func (f *fakeChatRepository) AppendMessage(_ context.Context, _, _ int64, content string) (int64, error) {
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	f.appended = append(f.appended, content)
	return f.appendID, nil
}

func (f *fakeChatRepository) GetMessage(_ context.Context, _ int64) (chat.Message, error) {
	return f.message, f.getMsgErr
}

func (f *fakeChatRepository) ListMessages(_ context.Context, _ int64, _, _ int) ([]chat.Message, error) {
	return f.messages, f.messagesErr
}

func (f *fakeChatRepository) ListOtherMembers(_ context.Context, _, _ int64) ([]int64, error) {
	return f.others, f.othersErr
}

func (f *fakeChatRepository) IsMember(_ context.Context, _, _ int64) (bool, error) {
	f.memberCalls++
	return f.member, f.memberErr
}

// fakeDeliverer records every fan-out it receives.
type fakeDeliverer struct {
	calls []deliverCall
}

type deliverCall struct {
	msg        chat.Message
	recipients []int64
}

func (f *fakeDeliverer) Deliver(msg chat.Message, recipientIDs []int64) {
	f.calls = append(f.calls, deliverCall{msg: msg, recipients: recipientIDs})
}
