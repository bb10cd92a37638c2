package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	qport "github.com/Carthago1/chat-backend/internal/infrastructure/queue/port"
	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/usecase"
	repoAdapter "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/adapter"
)

// PostMessageTaskType is the queue task name for posting a message.
const PostMessageTaskType = "chat:post_message"

// PostMessageTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type PostMessageTaskPayload struct {
	ConversationID int64  `json:"conversationId"`
	SenderID       int64  `json:"senderId"`
	Content        string `json:"content"`
}

// RegisterPostMessageTask binds the task handler to the provided server.
// The handler runs the same post-message use case as the synchronous path,
// including live delivery through the shared dispatcher, so a queued message
// is still pushed to connected recipients once it commits.
func RegisterPostMessageTask(srv qport.Server, pool *pgxpool.Pool, dispatcher usecase.Deliverer, log zerolog.Logger) {
	srv.Register(PostMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p PostMessageTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// A malformed payload can never succeed on retry.
			log.Warn().Err(err).Msg("dropping malformed queued message")
			return nil
		}

		repo := repoAdapter.NewPgChatRepository(pool)
		uc := usecase.NewPostMessageUseCase(repo, dispatcher, log)

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := uc.Execute(ctx, usecase.PostMessageInput{
			ConversationID: p.ConversationID,
			SenderID:       p.SenderID,
			Content:        p.Content,
		})
		if err != nil {
			// Validation and membership failures will never succeed on retry.
			if errors.Is(err, usecase.ErrValidation) || errors.Is(err, chat.ErrNotMember) {
				log.Warn().Err(err).Msg("dropping unprocessable queued message")
				return nil
			}
			// Persistence errors are retryable per the adapter's policy.
			return err
		}
		return nil
	})
}
