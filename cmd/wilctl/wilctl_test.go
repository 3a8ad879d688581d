package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/wil-portal/config"
	"github.com/oksasatya/wil-portal/internal/container"
	"github.com/oksasatya/wil-portal/internal/infrastructure/memory"
	"github.com/oksasatya/wil-portal/internal/router"
	"github.com/oksasatya/wil-portal/pkg/helpers"
)

func newAPIServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users, err := memory.SeedUsers(memory.DemoCredentials(), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo, err := memory.NewUserRepository(users)
	require.NoError(t, err)
	programRepo, err := memory.NewProgramRepository(memory.DefaultPrograms())
	require.NoError(t, err)

	engine := router.NewEngine(&container.Container{
		Config: &config.Config{
			AppName:     "wil-portal",
			AppVersion:  "test",
			APIPrefix:   "/api",
			FrontendURL: "http://localhost:3000",
			BcryptCost:  bcrypt.MinCost,
		},
		Logger:      helpers.NewDiscardLogger(),
		JWT:         helpers.NewJWTManager("cli-test", time.Hour, "wil-portal"),
		Users:       userRepo,
		Programs:    programRepo,
		Revocations: memory.NewRevocationStore(),
		Stats:       memory.DefaultStats(),
	})
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

type cli struct {
	t    *testing.T
	api  string
	home string
}

func (c cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--api", c.api, "--home", c.home}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func newCLI(t *testing.T) cli {
	return cli{t: t, api: newAPIServer(t), home: t.TempDir()}
}

func TestPrograms(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("", "programs")
	require.NoError(t, err)
	assert.Contains(t, out, "coop")
	assert.Contains(t, out, "alternance")
	assert.Less(t, strings.Index(out, "coop"), strings.Index(out, "remote"))

	out, err = c.run("", "programs", "remote")
	require.NoError(t, err)
	assert.Contains(t, out, "Remote@AUI")

	_, err = c.run("", "programs", "nonexistent")
	assert.ErrorContains(t, err, "not found")
}

func TestLoginWhoamiLogout(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")

	_, err = c.run("", "login", "-e", "student@aui.ma", "-p", "wrong")
	assert.Error(t, err)

	// password read from piped stdin
	out, err = c.run("student123\n", "login", "-e", "student@aui.ma")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Demo Student (student)")

	// session survives across invocations
	out, err = c.run("", "whoami", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, "student@aui.ma")
	assert.Contains(t, out, "STU001")

	out, err = c.run("", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	out, err = c.run("", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestApply(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "apply", "--set", "firstName=A", "--set", "lastName=B", "--set", "email=a@b.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studentId, program")

	_, err = c.run("", "apply", "--set", "nickname=x")
	assert.ErrorContains(t, err, "unknown application field")

	out, err := c.run("", "apply",
		"--set", "firstName=A", "--set", "lastName=B", "--set", "email=a@b.com",
		"--set", "studentId=S1", "--set", "program=coop")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 4/4: motivation")
	assert.Contains(t, out, "Application submitted: APP-")
}

func TestApply_PrefillsFromStudentProfile(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("", "login", "-e", "student@aui.ma", "-p", "student123")
	require.NoError(t, err)

	out, err := c.run("", "apply", "--set", "program=remote")
	require.NoError(t, err)
	assert.Contains(t, out, "Application submitted")
}

func TestContact(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("", "contact", "--name", "N")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email, subject, message")

	out, err := c.run("", "contact", "--name", "N", "--email", "n@x.ma", "--subject", "Hi", "-m", "Question")
	require.NoError(t, err)
	assert.Contains(t, out, "Message sent")
}

func TestFailingCommandClosesSessionStore(t *testing.T) {
	c := newCLI(t)
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"--api", c.api, "--home", c.home, "programs", "no-such-program"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Nil(t, cmd.app.store)
}
