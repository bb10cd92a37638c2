package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Carthago1/chat-backend/internal/pkg/user/application/usecase"
	"github.com/Carthago1/chat-backend/internal/repository/adapter"
)

// RegisterController handles account registration (one controller per endpoint).
type RegisterController struct {
	UC *usecase.RegisterUserUseCase
}

func NewRegisterController(pool *pgxpool.Pool) *RegisterController {
	repo := adapter.NewPgUserRepository(pool)
	return &RegisterController{UC: usecase.NewRegisterUserUseCase(repo)}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		_, err := h.UC.Execute(ctx, usecase.RegisterUserInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrUsernameTaken) {
				c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
				return
			}
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "success registration"})
	}
}
