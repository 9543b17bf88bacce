package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	pgutil "github.com/Temutjin2k/solotrip-connect/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts u and fills its id and creation time.
func (r *UserRepo) CreateUser(ctx context.Context, u *models.User) (_ int64, err error) {
	defer observe("user_create", time.Now(), &err)

	if u == nil {
		return 0, errors.New("nil user")
	}

	const q = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, created_at`

	err = TxorDB(ctx, r.db).QueryRow(ctx, q, u.Username, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return 0, types.ErrUserExists
		}
		return 0, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	return u.ID, nil
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (_ *models.User, err error) {
	defer observe("user_get", time.Now(), &err)

	const q = `
		SELECT id, username, COALESCE(email, ''), password_hash, created_at
		FROM users
		WHERE username = $1`

	var u models.User
	err = TxorDB(ctx, r.db).QueryRow(ctx, q, username).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", types.ErrDatabaseFailed, err)
	}
	return &u, nil
}
