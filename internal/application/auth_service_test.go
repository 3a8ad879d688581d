package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/internal/infrastructure/memory"
	"github.com/oksasatya/wil-portal/pkg/helpers"
)

func newTestAuthService(t *testing.T) (*AuthService, *bytes.Buffer) {
	t.Helper()
	users, err := memory.SeedUsers(memory.DemoCredentials(), bcrypt.MinCost)
	require.NoError(t, err)
	repo, err := memory.NewUserRepository(users)
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	jwt := helpers.NewJWTManager("test-secret", 24*time.Hour, "wil-portal")
	return NewAuthService(repo, jwt, memory.NewRevocationStore(), logger, bcrypt.MinCost), &logs
}

func TestLogin_AllSeededUsers(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	for _, c := range memory.DemoCredentials() {
		res, err := svc.Login(ctx, LoginInput{Email: c.User.Email, Password: c.Password})
		require.NoError(t, err, c.User.Email)

		claims, err := svc.JWT.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, c.User.ID, claims.UserID)
		assert.Equal(t, string(c.User.Role), claims.Role)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), res.ExpiresAt, time.Minute)
		assert.Equal(t, c.User.Email, res.User.Email)
	}
}

func TestLogin_NoPasswordInUserInfo(t *testing.T) {
	svc, _ := newTestAuthService(t)

	res, err := svc.Login(context.Background(), LoginInput{Email: "admin@aui.ma", Password: "admin123"})
	require.NoError(t, err)

	b, err := json.Marshal(res.User)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "$2a$")
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, logs := newTestAuthService(t)
	ctx := context.Background()

	_, wrongPwd := svc.Login(ctx, LoginInput{Email: "student@aui.ma", Password: "nope"})
	_, unknown := svc.Login(ctx, LoginInput{Email: "ghost@aui.ma", Password: "student123"})

	assert.ErrorIs(t, wrongPwd, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPwd.Error(), unknown.Error())

	// the reason only lands in the server log, and never the raw password
	assert.Contains(t, logs.String(), "bad_password")
	assert.Contains(t, logs.String(), "unknown_email")
	assert.NotContains(t, logs.String(), "student123")
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{Email: "Admin@aui.ma", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{Email: "admin@aui.ma"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Email and password are required", verr.Message)
	assert.Equal(t, []string{"password"}, verr.Fields)
}

func TestLogin_SigningFailureIsInternal(t *testing.T) {
	svc, _ := newTestAuthService(t)
	svc.JWT = helpers.NewJWTManager("", time.Hour, "")

	_, err := svc.Login(context.Background(), LoginInput{Email: "admin@aui.ma", Password: "admin123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestVerify_AndLogout(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginInput{Email: "employer@techcorp.ma", Password: "employer123"})
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, res.Token)
	require.NoError(t, err)

	u, err := svc.CurrentUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployer, u.Role)
	assert.Equal(t, "TechCorp Morocco", u.Company)

	require.NoError(t, svc.Logout(ctx, claims))
	_, err = svc.Verify(ctx, res.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// logging out twice is harmless
	require.NoError(t, svc.Logout(ctx, claims))
}

func TestVerify_RejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Verify(context.Background(), "abc.def.ghi")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCurrentUser_UnknownSubject(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CurrentUser(context.Background(), &helpers.SessionClaims{UserID: "99"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDummyHash_MatchesStoredCost(t *testing.T) {
	const cost = bcrypt.MinCost + 1
	users, err := memory.SeedUsers(memory.DemoCredentials(), cost)
	require.NoError(t, err)
	repo, err := memory.NewUserRepository(users)
	require.NoError(t, err)

	svc := NewAuthService(repo, helpers.NewJWTManager("s", time.Hour, "wil-portal"), nil, nil, cost)

	dummyCost, err := bcrypt.Cost([]byte(svc.dummyHash))
	require.NoError(t, err)
	for _, u := range users {
		userCost, err := bcrypt.Cost([]byte(u.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, userCost, dummyCost, u.Email)
	}
}
