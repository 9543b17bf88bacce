package auth

import (
	"context"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type TokenProvider interface {
	Generate(ctx context.Context, user *models.User) (*models.IssuedToken, error)
	Validate(ctx context.Context, token string) (*models.Claims, error)
}

// LoginThrottle counts failed logins per username.
type LoginThrottle interface {
	Allowed(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// NopThrottle never blocks a login.
type NopThrottle struct{}

func (NopThrottle) Allowed(context.Context, string) (bool, error) { return true, nil }
func (NopThrottle) RecordFailure(context.Context, string) error   { return nil }
func (NopThrottle) Reset(context.Context, string) error           { return nil }
