package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Carthago1/chat-backend/internal/auth"
	repository "github.com/Carthago1/chat-backend/internal/repository/port"
)

// LoginInput carries the credentials of a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginUseCase verifies credentials and issues an access token.
type LoginUseCase struct {
	Repo   repository.UserRepository
	Issuer *auth.TokenIssuer
}

func NewLoginUseCase(repo repository.UserRepository, issuer *auth.TokenIssuer) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Issuer: issuer}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	u, err := uc.Repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := uc.Issuer.Generate(u.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return token, nil
}
