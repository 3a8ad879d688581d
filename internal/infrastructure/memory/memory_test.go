package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/internal/domain/repository"
	"github.com/oksasatya/wil-portal/pkg/helpers"
)

func TestSeedUsers_HashesWithSalt(t *testing.T) {
	users, err := SeedUsers(DemoCredentials(), bcrypt.MinCost)
	require.NoError(t, err)
	require.Len(t, users, 3)

	for i, c := range DemoCredentials() {
		assert.True(t, helpers.CompareHashAndPassword(users[i].PasswordHash, c.Password), c.User.Email)
		assert.NotEqual(t, c.Password, users[i].PasswordHash)
	}
}

func TestUserRepository_Lookup(t *testing.T) {
	users, err := SeedUsers(DemoCredentials(), bcrypt.MinCost)
	require.NoError(t, err)
	repo, err := NewUserRepository(users)
	require.NoError(t, err)
	ctx := context.Background()

	u, err := repo.GetByEmail(ctx, "admin@aui.ma")
	require.NoError(t, err)
	assert.Equal(t, "3", u.ID)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	_, err = repo.GetByEmail(ctx, "ADMIN@aui.ma")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	u, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "student@aui.ma", u.Email)

	// returned records are copies
	u.Role = entity.RoleAdmin
	again, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, entity.RoleStudent, again.Role)
}

func TestNewUserRepository_Rejects(t *testing.T) {
	base := entity.User{ID: "1", Email: "a@b.c", PasswordHash: "h", Role: entity.RoleStudent}

	_, err := NewUserRepository([]entity.User{base, {ID: "2", Email: "a@b.c", PasswordHash: "h", Role: entity.RoleStudent}})
	assert.ErrorContains(t, err, "duplicate email")

	_, err = NewUserRepository([]entity.User{base, {ID: "1", Email: "x@b.c", PasswordHash: "h", Role: entity.RoleStudent}})
	assert.ErrorContains(t, err, "duplicate user id")

	_, err = NewUserRepository([]entity.User{{ID: "1", Email: "a@b.c", PasswordHash: "h", Role: "root"}})
	assert.ErrorContains(t, err, "unknown role")

	_, err = NewUserRepository([]entity.User{{ID: "1", Email: "a@b.c", Role: entity.RoleStudent}})
	assert.Error(t, err)
}

func TestProgramRepository(t *testing.T) {
	repo, err := NewProgramRepository(DefaultPrograms())
	require.NoError(t, err)
	ctx := context.Background()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"coop", "remote", "alternance"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})

	p, err := repo.FindBySlug(ctx, "coop")
	require.NoError(t, err)
	assert.Equal(t, "Co-op Program", p.Name)

	_, err = repo.FindBySlug(ctx, "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all[0].Slug = "changed"
	fresh, _ := repo.All(ctx)
	assert.Equal(t, "coop", fresh[0].Slug)
}

func TestNewProgramRepository_DuplicateSlug(t *testing.T) {
	_, err := NewProgramRepository([]entity.Program{{Slug: "coop"}, {Slug: "coop"}})
	assert.Error(t, err)
}

func TestRevocationStore(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewRevocationStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = s.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, _ = s.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)

	// already-expired tokens are not recorded
	require.NoError(t, s.Revoke(ctx, "jti-3", now.Add(-time.Minute)))
	assert.Empty(t, s.revoked)
}
