package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Carthago1/chat-backend/internal/auth"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/usecase"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/adapter"
)

// PostMessageController handles the synchronous send-message endpoint.
// The response is returned once the message is durably stored; live delivery
// to the other member happens on the same call but cannot fail it.
type PostMessageController struct {
	UC *usecase.PostMessageUseCase
}

func NewPostMessageController(pool *pgxpool.Pool, dispatcher usecase.Deliverer, log zerolog.Logger) *PostMessageController {
	repo := adapter.NewPgChatRepository(pool)
	return &PostMessageController{UC: usecase.NewPostMessageUseCase(repo, dispatcher, log)}
}

type postMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *PostMessageController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.PostMessageInput{
			ConversationID: chatID,
			SenderID:       userID,
			Content:        req.Content,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, msg)
	}
}
