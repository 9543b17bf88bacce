package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
	"github.com/Temutjin2k/solotrip-connect/pkg/passhash"
)

type AuthService struct {
	userRepo     UserRepo
	tokenService TokenProvider
	throttle     LoginThrottle
	log          logger.Logger
}

func NewAuthService(userRepo UserRepo, tokenService TokenProvider, throttle LoginThrottle, log logger.Logger) *AuthService {
	if throttle == nil {
		throttle = NopThrottle{}
	}
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		throttle:     throttle,
		log:          log,
	}
}

// Login checks credentials and issues a bearer session.
// Unknown users and wrong passwords are both reported as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	username := strings.TrimSpace(creds.Username)
	ctx = wrap.WithUsername(wrap.WithAction(ctx, "login"), username)

	allowed, err := s.throttle.Allowed(ctx, username)
	if err != nil {
		s.log.Warn(ctx, "login throttle unavailable", "error", err.Error())
	} else if !allowed {
		metrics.RecordLogin("throttled")
		s.log.Warn(wrap.WithAction(ctx, types.ActionLoginThrottled), "login throttled")
		return nil, wrap.Error(ctx, ErrTooManyAttempts)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, s.failed(ctx, username)
		}
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %w", ErrUnexpected, err))
	}

	ok, err := passhash.VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "stored password hash is malformed", err)
	}
	if err != nil || !ok {
		return nil, s.failed(ctx, username)
	}

	token, err := s.tokenService.Generate(ctx, user)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %w", ErrTokenGenerateFail, err))
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn(ctx, "failed to reset login throttle", "error", err.Error())
	}

	metrics.RecordLogin("success")
	s.log.Info(ctx, "user logged in")

	return &models.Session{
		Token:    token.Token,
		Type:     types.TokenType,
		Username: user.Username,
	}, nil
}

func (s *AuthService) failed(ctx context.Context, username string) error {
	metrics.RecordLogin("failure")
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn(ctx, "failed to record login failure", "error", err.Error())
	}
	return wrap.Error(ctx, ErrInvalidCredentials)
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokenService.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, wrap.Error(ctx, ErrInvalidToken)
		}
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %w", ErrUnexpected, err))
	}

	return user, nil
}

// EnsureUser creates the user with the given password unless it already exists.
func (s *AuthService) EnsureUser(ctx context.Context, username, email, password string) (*models.User, error) {
	ctx = wrap.WithUsername(wrap.WithAction(ctx, "ensure_user"), username)

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, types.ErrUserNotFound) {
		return nil, wrap.Error(ctx, err)
	}

	hash, err := passhash.HashPassword(password)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	s.log.Info(ctx, "user created")
	return user, nil
}
