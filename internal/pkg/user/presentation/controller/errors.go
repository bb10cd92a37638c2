package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Carthago1/chat-backend/internal/pkg/user/application/usecase"
)

// respondError maps use case error kinds to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
	case errors.Is(err, usecase.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "unexpected persistence error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	}
}
