package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/usecase"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/adapter"
)

// GetMessagesController handles fetching a conversation's history
// (one controller per endpoint).
type GetMessagesController struct {
	UC *usecase.ListMessagesUseCase
}

func NewGetMessagesController(pool *pgxpool.Pool) *GetMessagesController {
	repo := adapter.NewPgChatRepository(pool)
	return &GetMessagesController{UC: usecase.NewListMessagesUseCase(repo)}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID, err := strconv.ParseInt(c.Param("chatId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId must be numeric"})
			return
		}

		// Without a limit parameter the full history is returned; pagination
		// only kicks in when the client asks for it.
		limit := 0
		offset := 0

		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.ListMessagesInput{
			ConversationID: chatID,
			Limit:          limit,
			Offset:         offset,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		out := lo.Map(msgs, func(m chat.Message, _ int) gin.H {
			return gin.H{
				"id":              m.ID,
				"conversation_id": m.ConversationID,
				"sender_id":       m.SenderID,
				"sender_name":     m.SenderName,
				"content":         m.Content,
				"sent_at":         m.SentAt,
			}
		})

		c.JSON(http.StatusOK, gin.H{
			"messages": out,
			"limit":    limit,
			"offset":   offset,
			"count":    len(out),
		})
	}
}
