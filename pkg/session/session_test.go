package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wil-portal/pkg/client"
	"github.com/oksasatya/wil-portal/pkg/helpers"
)

type fakeAPI struct {
	users     map[string]string // email -> password
	transport error
	logoutErr error
	loggedOut []string
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*client.LoginResponse, error) {
	if f.transport != nil {
		return nil, f.transport
	}
	if pw, ok := f.users[email]; !ok || pw != password {
		return nil, &client.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	return &client.LoginResponse{
		Token: "tok-" + email,
		User:  client.User{ID: "1", Email: email, Role: "student", Name: "Demo Student"},
	}, nil
}

func (f *fakeAPI) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return f.logoutErr
}

func newAPI() *fakeAPI {
	return &fakeAPI{users: map[string]string{"student@aui.ma": "student123"}}
}

func TestLogin_PersistsAndRehydrates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	api := newAPI()

	s := New(ctx, api, store, helpers.NewDiscardLogger())
	assert.False(t, s.IsAuthenticated())

	require.True(t, s.Login(ctx, "student@aui.ma", "student123"))
	assert.True(t, s.IsAuthenticated())
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "student@aui.ma", u.Email)

	// a fresh session over the same storage picks the login up
	restored := New(ctx, api, store, nil)
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "tok-student@aui.ma", restored.Token())
}

func TestLogin_Rejected(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	s := New(ctx, newAPI(), store, nil)

	assert.False(t, s.Login(ctx, "student@aui.ma", "wrong"))
	assert.False(t, s.IsAuthenticated())
	_, ok, _ := store.Get(ctx, KeyToken)
	assert.False(t, ok)
}

func TestLogin_TransportErrorReturnsFalse(t *testing.T) {
	ctx := context.Background()
	api := newAPI()
	api.transport = errors.New("connection refused")
	s := New(ctx, api, NewMemoryStorage(), helpers.NewDiscardLogger())

	assert.False(t, s.Login(ctx, "student@aui.ma", "student123"))
	assert.False(t, s.IsAuthenticated())
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	api := newAPI()
	api.logoutErr = errors.New("server gone")
	s := New(ctx, api, store, helpers.NewDiscardLogger())
	require.True(t, s.Login(ctx, "student@aui.ma", "student123"))

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, ok, _ := store.Get(ctx, KeyUser)
	assert.False(t, ok)
	assert.Equal(t, []string{"tok-student@aui.ma"}, api.loggedOut)

	s.Logout(ctx)
	assert.Len(t, api.loggedOut, 1)
}

func TestRehydrate_CorruptStorageIsCleared(t *testing.T) {
	ctx := context.Background()

	cases := map[string]map[string]string{
		"bad json":     {KeyToken: "tok", KeyUser: "{not json"},
		"token only":   {KeyToken: "tok"},
		"user only":    {KeyUser: `{"id":"1","email":"a@b"}`},
		"empty token":  {KeyToken: "", KeyUser: `{"id":"1","email":"a@b"}`},
		"user without": {KeyToken: "tok", KeyUser: `{}`},
	}
	for name, seed := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStorage()
			for k, v := range seed {
				require.NoError(t, store.Set(ctx, k, v))
			}

			s := New(ctx, newAPI(), store, helpers.NewDiscardLogger())
			assert.False(t, s.IsAuthenticated())
			_, okT, _ := store.Get(ctx, KeyToken)
			_, okU, _ := store.Get(ctx, KeyUser)
			assert.False(t, okT)
			assert.False(t, okU)
		})
	}
}

func TestSQLiteStorage(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLiteStorage(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))
	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, store.Clear(ctx, "k", "never-set"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorage_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/session.db"

	store, err := OpenSQLiteStorage(ctx, dsn)
	require.NoError(t, err)
	s := New(ctx, newAPI(), store, nil)
	require.True(t, s.Login(ctx, "student@aui.ma", "student123"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStorage(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	restored := New(ctx, newAPI(), reopened, nil)
	u, ok := restored.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "student@aui.ma", u.Email)
}
