package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/Carthago1/chat-backend/internal/pkg/user/domain"
	repository "github.com/Carthago1/chat-backend/internal/repository/port"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Ensure interface compliance at compile time
var _ repository.UserRepository = (*PgUserRepository)(nil)

const uniqueViolation = "23505"

func (r *PgUserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgUserRepository: nil pool")
	}
	var id int64
	err := r.pool.QueryRow(ctx,
		"INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id",
		username, passwordHash,
	).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return 0, repository.ErrDuplicate
	}
	return id, err
}

func (r *PgUserRepository) FindByID(ctx context.Context, id int64) (user.User, error) {
	if r == nil || r.pool == nil {
		return user.User{}, errors.New("PgUserRepository: nil pool")
	}
	var u user.User
	err := r.pool.QueryRow(ctx,
		"SELECT id, username, password_hash FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	if r == nil || r.pool == nil {
		return user.User{}, errors.New("PgUserRepository: nil pool")
	}
	var u user.User
	err := r.pool.QueryRow(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *PgUserRepository) SearchByPrefix(ctx context.Context, prefix string) ([]user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx,
		"SELECT id, username FROM users WHERE username LIKE $1 || '%' ORDER BY username",
		prefix,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return users, nil
}
