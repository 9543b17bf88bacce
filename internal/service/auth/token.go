package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates HS512 session tokens whose subject is the username.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    logger.Logger
}

func NewTokenService(secret string, ttl time.Duration, log logger.Logger) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

func (s *TokenService) Generate(ctx context.Context, user *models.User) (*models.IssuedToken, error) {
	ctx = wrap.WithAction(ctx, "generate_token")
	if user == nil || user.Username == "" {
		return nil, wrap.Error(ctx, errors.New("user is empty"))
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.ttl)

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return &models.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *TokenService) Validate(ctx context.Context, token string) (*models.Claims, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, wrap.Error(ctx, ErrExpToken)
		}
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	return claims, nil
}
