package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

var ErrEmptyToken = errors.New("login response carried no token")

// Authenticator exchanges credentials for a session issued by the backend.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
}

// Store holds the single session of the running application.
// It starts empty and changes only through Login and Logout.
type Store struct {
	mu      sync.RWMutex
	current *models.Session

	auth Authenticator
	log  logger.Logger
}

func NewStore(auth Authenticator, log logger.Logger) *Store {
	return &Store{
		auth: auth,
		log:  log,
	}
}

// Login authenticates once and keeps the issued session.
// On failure the store is left as it was.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	ctx = wrap.WithUsername(wrap.WithAction(ctx, "session_login"), creds.Username)

	issued, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.log.Warn(ctx, "login rejected", "error", err.Error())
		return nil, wrap.Error(ctx, fmt.Errorf("login: %w", err))
	}
	if issued == nil || issued.Token == "" {
		return nil, wrap.Error(ctx, ErrEmptyToken)
	}

	stored := *issued
	if stored.Type == "" {
		stored.Type = types.TokenType
	}
	if stored.Username == "" {
		stored.Username = creds.Username
	}

	s.mu.Lock()
	s.current = &stored
	s.mu.Unlock()

	s.log.Info(ctx, "session started")

	out := stored
	return &out, nil
}

// Logout clears the token and username.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Store) Username() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return "", false
	}
	return s.current.Username, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current != nil
}

// Token returns the scheme and token to put in the Authorization header.
func (s *Store) Token() (scheme, token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return "", "", false
	}
	return strings.TrimSpace(s.current.Type), s.current.Token, true
}
