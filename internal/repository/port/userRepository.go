package repository

import (
	"context"
	"errors"

	user "github.com/Carthago1/chat-backend/internal/pkg/user/domain"
)

var (
	// ErrNotFound signals that no user matches the lookup.
	ErrNotFound = errors.New("user repository: not found")
	// ErrDuplicate signals a unique-constraint violation on username.
	ErrDuplicate = errors.New("user repository: username already taken")
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	FindByID(ctx context.Context, id int64) (user.User, error)
	FindByUsername(ctx context.Context, username string) (user.User, error)
	SearchByPrefix(ctx context.Context, prefix string) ([]user.User, error)
}
