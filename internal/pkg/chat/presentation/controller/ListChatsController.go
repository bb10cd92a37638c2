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

// ListChatsController returns the caller's conversations, most recently
// joined first.
type ListChatsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListChatsController(pool *pgxpool.Pool) *ListChatsController {
	repo := adapter.NewPgChatRepository(pool)
	return &ListChatsController{UC: usecase.NewListConversationsUseCase(repo)}
}

func (h *ListChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authenticated user"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		summaries, err := h.UC.Execute(ctx, usecase.ListConversationsInput{UserID: userID})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"chats": summaries, "count": len(summaries)})
	}
}
