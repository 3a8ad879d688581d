package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["email"] != "admin@aui.ma" || in["password"] != "admin123" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"message":   "Login successful",
			"token":     "tok-admin",
			"expiresAt": time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			"user":      map[string]any{"id": "3", "email": "admin@aui.ma", "role": "admin", "name": "WIL Administrator"},
		})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-admin" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Authentication required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]any{"id": "3", "role": "admin"}})
	})
	mux.HandleFunc("GET /api/programs/{slug}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("slug") != "coop" {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Program not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "program": map[string]any{"slug": "coop", "name": "Co-op Program"}})
	})
	mux.HandleFunc("POST /api/applications", func(w http.ResponseWriter, r *http.Request) {
		var app Application
		_ = json.NewDecoder(r.Body).Decode(&app)
		if app.StudentID == "" || app.Program == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success":       false,
				"message":       "Missing required fields: studentId, program",
				"missingFields": []string{"studentId", "program"},
			})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "applicationId": "APP-1", "submittedAt": time.Now().UTC()})
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api/", time.Second)
	require.NoError(t, err)
	return c
}

func TestLoginAndMe(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	res, err := c.Login(ctx, "admin@aui.ma", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "tok-admin", res.Token)
	assert.Equal(t, "admin", res.User.Role)

	u, err := c.Me(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "3", u.ID)

	_, err = c.Me(ctx, "other")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_Rejected(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Login(context.Background(), "admin@aui.ma", "nope")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProgram_NotFound(t *testing.T) {
	c := newTestServer(t)

	p, err := c.Program(context.Background(), "coop")
	require.NoError(t, err)
	assert.Equal(t, "Co-op Program", p.Name)

	_, err = c.Program(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitApplication_MissingFields(t *testing.T) {
	c := newTestServer(t)

	_, err := c.SubmitApplication(context.Background(), Application{FirstName: "A", LastName: "B", Email: "a@b.com"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, []string{"studentId", "program"}, apiErr.MissingFields)

	rec, err := c.SubmitApplication(context.Background(), Application{
		FirstName: "A", LastName: "B", Email: "a@b.com", StudentID: "S", Program: "coop",
	})
	require.NoError(t, err)
	assert.Equal(t, "APP-1", rec.ApplicationID)
}

func TestNonJSONError(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Health(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.ErrorIs(t, err, ErrServer)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := New(srv.URL, 200*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "a", "b")
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("", 0)
	assert.Error(t, err)

	c, err := New("localhost:3001/api", 0)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
