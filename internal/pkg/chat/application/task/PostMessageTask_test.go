package task

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	qport "github.com/Carthago1/chat-backend/internal/infrastructure/queue/port"
)

type fakeServer struct {
	handlers map[string]qport.Handler
}

func newFakeServer() *fakeServer {
	return &fakeServer{handlers: map[string]qport.Handler{}}
}

func (f *fakeServer) Register(taskType string, h qport.Handler) { f.handlers[taskType] = h }
func (f *fakeServer) Run(ctx context.Context) error             { return nil }
func (f *fakeServer) Stop(ctx context.Context) error            { return nil }

func registeredHandler(t *testing.T) qport.Handler {
	t.Helper()
	srv := newFakeServer()
	RegisterPostMessageTask(srv, nil, nil, zerolog.Nop())
	h, ok := srv.handlers[PostMessageTaskType]
	require.True(t, ok)
	return h
}

func TestPostMessageTaskDropsMalformedPayload(t *testing.T) {
	h := registeredHandler(t)

	// A payload that can never parse must not be requeued.
	err := h(context.Background(), qport.Task{
		Type:    PostMessageTaskType,
		Payload: []byte("{not json"),
	})
	require.NoError(t, err)
}

func TestPostMessageTaskDropsUnprocessablePayload(t *testing.T) {
	req := require.New(t)
	h := registeredHandler(t)

	// Blank content fails validation before any store access, so the task is
	// dropped rather than retried.
	b, err := json.Marshal(PostMessageTaskPayload{ConversationID: 1, SenderID: 1, Content: "   "})
	req.NoError(err)

	err = h(context.Background(), qport.Task{Type: PostMessageTaskType, Payload: b})
	req.NoError(err)
}

func TestPostMessageTaskRetriesOnStoreFailure(t *testing.T) {
	req := require.New(t)
	h := registeredHandler(t)

	// A valid payload against an unreachable store surfaces the error so the
	// queue retries it.
	b, err := json.Marshal(PostMessageTaskPayload{ConversationID: 1, SenderID: 1, Content: "hi"})
	req.NoError(err)

	err = h(context.Background(), qport.Task{Type: PostMessageTaskType, Payload: b})
	req.Error(err)
}
