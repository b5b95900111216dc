package ports

import (
	"context"
	"errors"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/domain"
)

var ErrNotFound = errors.New("user not found")

// UserRepository abstracts account lookup and provisioning.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
