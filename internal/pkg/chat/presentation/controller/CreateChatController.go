package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Carthago1/chat-backend/internal/auth"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/usecase"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/adapter"
)

// CreateChatController handles the conversation creation endpoint
// (one controller per endpoint).
type CreateChatController struct {
	UC *usecase.StartConversationUseCase
}

func NewCreateChatController(pool *pgxpool.Pool) *CreateChatController {
	repo := adapter.NewPgChatRepository(pool)
	return &CreateChatController{UC: usecase.NewStartConversationUseCase(repo)}
}

type createChatRequest struct {
	OtherUserID int64 `json:"other_user_id" binding:"required"`
}

func (h *CreateChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authenticated user"})
			return
		}

		var req createChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		summary, err := h.UC.Execute(ctx, usecase.StartConversationInput{
			UserID:      userID,
			OtherUserID: req.OtherUserID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, summary)
	}
}
