package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oksasatya/wil-portal/pkg/client"
	"github.com/oksasatya/wil-portal/pkg/wizard"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := bufio.NewReader(a.in)
			var err error
			if email == "" {
				if email, err = promptLine(r, a.out, "Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptPassword(a.in, r, a.out); err != nil {
					return err
				}
			}
			if !a.session.Login(cmd.Context(), email, password) {
				return errors.New("login failed: invalid credentials or server unreachable")
			}
			u, _ := a.session.CurrentUser()
			fmt.Fprintf(a.out, "Logged in as %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.session.Logout(cmd.Context())
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, ok := a.session.CurrentUser()
			if !ok {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}
			if remote {
				fresh, err := a.api.Me(cmd.Context(), a.session.Token())
				if errors.Is(err, client.ErrUnauthorized) {
					a.session.Logout(cmd.Context())
					fmt.Fprintln(a.out, "Session expired; logged out")
					return nil
				}
				if err != nil {
					return err
				}
				u = *fresh
			}
			printUser(a, u)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "confirm the session with the server")
	return cmd
}

func printUser(a *app, u client.User) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role\t%s\n", u.Role)
	for _, kv := range [][2]string{
		{"Student ID", u.StudentID}, {"Major", u.Major}, {"Year", u.Year}, {"GPA", u.GPA}, {"Company", u.Company},
	} {
		if kv[1] != "" {
			fmt.Fprintf(tw, "%s\t%s\n", kv[0], kv[1])
		}
	}
	_ = tw.Flush()
}

func newProgramsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "programs [slug]",
		Short: "List programs, or show one by slug",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p, err := a.api.Program(cmd.Context(), args[0])
				if errors.Is(err, client.ErrNotFound) {
					return fmt.Errorf("program %q not found", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s (%s)\n%s\n\nDuration:     %s\nRequirements: %s\nBenefits:     %s\n",
					p.Name, p.Slug, p.Description, p.Duration, p.Requirements, p.Benefits)
				return nil
			}
			programs, err := a.api.Programs(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tNAME\tDURATION")
			for _, p := range programs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Slug, p.Name, p.Duration)
			}
			return tw.Flush()
		},
	}
}

func newApplyCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "apply --set field=value ...",
		Short: "Submit an application",
		Long: `Walks the four application steps and submits the draft.

Fields by step:
  1 personal:   firstName lastName email phone studentId
  2 program:    program preferredStartDate duration
  3 academic:   major year gpa expectedGraduation
  4 motivation: previousExperience motivation skills careerGoals

When signed in as a student, name, email, student id and major default to
the profile.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := wizard.New(a.api)
			if u, ok := a.session.CurrentUser(); ok && u.Role == "student" {
				prefill(w, u)
			}
			for _, kv := range sets {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("bad --set %q, want field=value", kv)
				}
				if err := w.Set(strings.TrimSpace(k), v); err != nil {
					return err
				}
			}
			for w.Step() != wizard.StepMotivation {
				step, total := w.Progress()
				fmt.Fprintf(a.out, "Step %d/%d: %s\n", step, total, w.Step())
				w.Next()
			}
			step, total := w.Progress()
			fmt.Fprintf(a.out, "Step %d/%d: %s\n", step, total, w.Step())

			receipt, err := w.Submit(cmd.Context())
			var missing *wizard.MissingFieldsError
			if errors.As(err, &missing) {
				return fmt.Errorf("%s (set them with --set)", missing.Error())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Application submitted: %s at %s\n", receipt.ApplicationID, receipt.SubmittedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "draft field as field=value (repeatable)")
	return cmd
}

func prefill(w *wizard.Wizard, u client.User) {
	first, last, _ := strings.Cut(u.Name, " ")
	for field, v := range map[string]string{
		"firstName": first,
		"lastName":  last,
		"email":     u.Email,
		"studentId": u.StudentID,
		"major":     u.Major,
		"year":      u.Year,
		"gpa":       u.GPA,
	} {
		if v != "" {
			_ = w.Set(field, v)
		}
	}
}

func newContactCmd(a *app) *cobra.Command {
	var msg client.ContactMessage
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if u, ok := a.session.CurrentUser(); ok {
				if msg.Name == "" {
					msg.Name = u.Name
				}
				if msg.Email == "" {
					msg.Email = u.Email
				}
			}
			id, err := a.api.SubmitContact(cmd.Context(), msg)
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && len(apiErr.MissingFields) > 0 {
				return fmt.Errorf("%s: %s", apiErr.Message, strings.Join(apiErr.MissingFields, ", "))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Message sent (id %s)\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&msg.Name, "name", "", "your name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "reply-to email")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "subject")
	cmd.Flags().StringVarP(&msg.Message, "message", "m", "", "message body")
	return cmd
}
