package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/domain"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository keeps accounts in memory for development and tests.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository constructs an empty in-memory repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]domain.User{}}
}

func (r *UserRepository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	if strings.TrimSpace(stored.ID) == "" {
		stored.ID = uuid.NewString()
	}
	r.users[strings.TrimSpace(stored.Email)] = stored
	copy := stored
	return &copy, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[strings.TrimSpace(email)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := user
	return &copy, nil
}
