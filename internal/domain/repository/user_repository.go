package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a lookup has no match.
var ErrNotFound = errors.New("not found")

// UserRepository is the read-only credential store.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
