package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Carthago1/chat-backend/internal/auth"
	"github.com/Carthago1/chat-backend/internal/pkg/user/application/usecase"
	"github.com/Carthago1/chat-backend/internal/repository/adapter"
)

// LoginController verifies credentials and returns an access token.
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(pool *pgxpool.Pool, issuer *auth.TokenIssuer) *LoginController {
	repo := adapter.NewPgUserRepository(pool)
	return &LoginController{UC: usecase.NewLoginUseCase(repo, issuer)}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		token, err := h.UC.Execute(ctx, usecase.LoginInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid username or password"})
				return
			}
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
