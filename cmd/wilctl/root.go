package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oksasatya/wil-portal/pkg/client"
	"github.com/oksasatya/wil-portal/pkg/helpers"
	"github.com/oksasatya/wil-portal/pkg/session"
)

const defaultAPIURL = "http://localhost:3001/api"

// app carries what every subcommand needs. It is built lazily in
// PersistentPreRunE so --help works without touching the session store.
type app struct {
	in  io.Reader
	out io.Writer

	apiURL  string
	home    string
	timeout time.Duration
	verbose bool

	api     *client.Client
	store   *session.SQLiteStorage
	session *session.Session
	logger  *logrus.Logger
}

// rootCmd closes the session store once the command tree has run. Cobra
// skips post-run hooks when RunE fails, so the close cannot live there.
type rootCmd struct {
	*cobra.Command
	app *app
}

func (r *rootCmd) Execute() error {
	err := r.Command.Execute()
	return errors.Join(err, r.app.close())
}

func newRootCmd(in io.Reader, out io.Writer) *rootCmd {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:   "wilctl",
		Short: "Terminal client for the WIL portal",
		Long: `wilctl talks to the WIL portal API.

Available commands:
  login     - Sign in with a demo account
  logout    - Sign out and revoke the token
  whoami    - Show the signed-in user
  programs  - List programs, or show one by slug
  apply     - Submit an application through the four-step form
  contact   - Send a contact message`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.apiURL, "api", envOr("WILCTL_API_URL", defaultAPIURL), "API base URL (env WILCTL_API_URL)")
	root.PersistentFlags().StringVar(&a.home, "home", envOr("WILCTL_HOME", defaultHome()), "directory for the session database (env WILCTL_HOME)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", client.DefaultTimeout, "request timeout")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log client diagnostics to stderr")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProgramsCmd(a),
		newApplyCmd(a),
		newContactCmd(a),
	)
	return &rootCmd{Command: root, app: a}
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a.logger = helpers.NewDiscardLogger()
	if a.verbose {
		a.logger.SetOutput(os.Stderr)
		a.logger.SetLevel(logrus.DebugLevel)
	}

	api, err := client.New(a.apiURL, a.timeout)
	if err != nil {
		return err
	}
	a.api = api

	if err := os.MkdirAll(a.home, 0o700); err != nil {
		return fmt.Errorf("create home dir: %w", err)
	}
	store, err := session.OpenSQLiteStorage(ctx, filepath.Join(a.home, "session.db"))
	if err != nil {
		return err
	}
	a.store = store
	a.session = session.New(ctx, api, store, a.logger)
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultHome() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wilctl")
	}
	return ".wilctl"
}
