package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	user "github.com/Carthago1/chat-backend/internal/pkg/user/domain"
	repository "github.com/Carthago1/chat-backend/internal/repository/port"
)

// RegisterUserInput carries the credentials for a new account.
type RegisterUserInput struct {
	Username string
	Password string
}

// RegisterUserUseCase creates an account with a bcrypt password hash.
// Usernames are unique and case-sensitive.
type RegisterUserUseCase struct {
	Repo repository.UserRepository
}

func NewRegisterUserUseCase(repo repository.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{Repo: repo}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*user.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	id, err := uc.Repo.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &user.User{ID: id, Username: username}, nil
}
