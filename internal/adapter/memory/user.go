package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
)

// UserRepo keeps users in process memory. Usernames are case sensitive.
type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		nextID: 1,
		users:  make(map[string]models.User),
	}
}

func (r *UserRepo) CreateUser(_ context.Context, u *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Username]; ok {
		return 0, types.ErrUserExists
	}

	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.Username] = *u
	return u.ID, nil
}

func (r *UserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	return &u, nil
}
