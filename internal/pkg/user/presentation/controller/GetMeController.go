package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Carthago1/chat-backend/internal/auth"
	cacheport "github.com/Carthago1/chat-backend/internal/infrastructure/cache/port"
	"github.com/Carthago1/chat-backend/internal/pkg/user/application/usecase"
	"github.com/Carthago1/chat-backend/internal/repository/adapter"
)

// GetMeController returns the authenticated caller's own profile.
type GetMeController struct {
	UC *usecase.GetMeUseCase
}

func NewGetMeController(pool *pgxpool.Pool, cache cacheport.Cache) *GetMeController {
	repo := adapter.NewPgUserRepository(pool)
	return &GetMeController{UC: usecase.NewGetMeUseCase(repo, cache)}
}

func (h *GetMeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "no authenticated user"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.GetMeInput{UserID: userID})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, u)
	}
}
