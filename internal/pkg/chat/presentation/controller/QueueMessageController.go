package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Carthago1/chat-backend/internal/auth"
	queueport "github.com/Carthago1/chat-backend/internal/infrastructure/queue/port"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/task"
)

// QueueMessageController accepts a message for background processing: the
// request returns 202 once the task is enqueued and the worker persists and
// delivers it.
type QueueMessageController struct {
	Q queueport.Client
}

func NewQueueMessageController(client queueport.Client) *QueueMessageController {
	return &QueueMessageController{Q: client}
}

func (h *QueueMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authenticated user"})
			return
		}

		chatID, err := strconv.ParseInt(c.Param("chatId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId must be numeric"})
			return
		}

		var req postMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		payload := task.PostMessageTaskPayload{
			ConversationID: chatID,
			SenderID:       userID,
			Content:        req.Content,
		}
		b, err := json.Marshal(payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode task payload"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		// Enqueue task; best-effort options
		opts := queueport.EnqueueOption{Queue: "chat", MaxRetry: 20}
		id, err := h.Q.Enqueue(ctx, queueport.Task{Type: task.PostMessageTaskType, Payload: b}, opts)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to enqueue message"})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status":    "queued",
			"task_id":   id,
			"chat_id":   chatID,
			"sender_id": userID,
		})
	}
}
