package usecase

import (
	"context"
	"fmt"
	"strings"

	user "github.com/Carthago1/chat-backend/internal/pkg/user/domain"
	repository "github.com/Carthago1/chat-backend/internal/repository/port"
)

// SearchUsersInput wraps the username prefix to search for.
type SearchUsersInput struct {
	Prefix string
}

// SearchUsersUseCase finds users whose username starts with the given prefix.
type SearchUsersUseCase struct {
	Repo repository.UserRepository
}

func NewSearchUsersUseCase(repo repository.UserRepository) *SearchUsersUseCase {
	return &SearchUsersUseCase{Repo: repo}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, in SearchUsersInput) ([]user.User, error) {
	prefix := strings.TrimSpace(in.Prefix)
	if prefix == "" {
		return nil, fmt.Errorf("%w: username prefix is required", ErrValidation)
	}
	users, err := uc.Repo.SearchByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return users, nil
}
