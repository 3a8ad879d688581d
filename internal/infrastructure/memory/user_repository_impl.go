package memory

import (
	"context"
	"fmt"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/internal/domain/repository"
)

// UserRepository is an immutable, in-memory credential store. It is safe for
// concurrent reads because nothing mutates it after construction.
type UserRepository struct {
	byID    map[string]entity.User
	byEmail map[string]string
}

// NewUserRepository copies users into a new store. Emails must be unique
// (exact, case-sensitive match), ids must be unique and roles must be known.
func NewUserRepository(users []entity.User) (*UserRepository, error) {
	r := &UserRepository{
		byID:    make(map[string]entity.User, len(users)),
		byEmail: make(map[string]string, len(users)),
	}
	for _, u := range users {
		if u.ID == "" || u.Email == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("user %q: id, email and password hash are required", u.Email)
		}
		if !u.Role.Valid() {
			return nil, fmt.Errorf("user %q: unknown role %q", u.Email, u.Role)
		}
		if _, dup := r.byEmail[u.Email]; dup {
			return nil, fmt.Errorf("duplicate email %q", u.Email)
		}
		if _, dup := r.byID[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %q", u.ID)
		}
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u.ID
	}
	return r, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
