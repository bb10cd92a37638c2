package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Carthago1/chat-backend/internal/pkg/user/application/usecase"
	"github.com/Carthago1/chat-backend/internal/repository/adapter"
)

// SearchUsersController handles username prefix search.
type SearchUsersController struct {
	UC *usecase.SearchUsersUseCase
}

func NewSearchUsersController(pool *pgxpool.Pool) *SearchUsersController {
	repo := adapter.NewPgUserRepository(pool)
	return &SearchUsersController{UC: usecase.NewSearchUsersUseCase(repo)}
}

func (h *SearchUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		prefix := c.Query("username")
		if prefix == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid username parameter"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		users, err := h.UC.Execute(ctx, usecase.SearchUsersInput{Prefix: prefix})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
	}
}
