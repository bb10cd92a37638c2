package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cacheport "github.com/Carthago1/chat-backend/internal/infrastructure/cache/port"
	user "github.com/Carthago1/chat-backend/internal/pkg/user/domain"
	repository "github.com/Carthago1/chat-backend/internal/repository/port"
)

const profileCacheTTL = 5 * time.Minute

// GetMeInput wraps the authenticated user's identity.
type GetMeInput struct {
	UserID int64
}

// GetMeUseCase returns the caller's own profile, read through the cache when
// one is configured. Cache is nil-tolerant: without a cache every call hits
// the repository.
type GetMeUseCase struct {
	Repo  repository.UserRepository
	Cache cacheport.Cache
}

func NewGetMeUseCase(repo repository.UserRepository, cache cacheport.Cache) *GetMeUseCase {
	return &GetMeUseCase{Repo: repo, Cache: cache}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, in GetMeInput) (*user.User, error) {
	if in.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	key := fmt.Sprintf("user:%d", in.UserID)
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var u user.User
			if json.Unmarshal([]byte(raw), &u) == nil {
				return &u, nil
			}
		}
	}

	u, err := uc.Repo.FindByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Cache only the public shape; the hash is tagged out of serialization.
	if uc.Cache != nil {
		if raw, err := json.Marshal(u); err == nil {
			_ = uc.Cache.Set(ctx, key, string(raw), profileCacheTTL)
		}
	}
	return &u, nil
}
