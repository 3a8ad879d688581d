package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	tpl "github.com/oksasatya/wil-portal/pkg/mailer/templates"
)

// ErrPoisonJob marks a job that can never be delivered (bad JSON, unknown
// template, missing recipient). Such jobs must not be requeued.
var ErrPoisonJob = errors.New("undeliverable email job")

// Dispatcher turns queued EmailJob payloads into sent emails.
type Dispatcher struct {
	Sender Sender
	Logger *logrus.Logger
}

func NewDispatcher(sender Sender, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Sender: sender, Logger: logger}
}

// Handle decodes, renders and sends one job. Errors wrapping ErrPoisonJob
// are permanent; any other error is a delivery failure worth retrying.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrPoisonJob, err)
	}
	if strings.TrimSpace(job.To) == "" {
		return fmt.Errorf("%w: empty recipient", ErrPoisonJob)
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		if !tpl.Known(job.Template) {
			return fmt.Errorf("%w: unknown template %q", ErrPoisonJob, job.Template)
		}
		s, t, h, err := tpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", ErrPoisonJob, job.Template, err)
		}
		subject, text, html = s, t, h
	}
	if subject == "" || (text == "" && html == "") {
		return fmt.Errorf("%w: empty content", ErrPoisonJob)
	}

	if err := d.Sender.Send(ctx, job.To, subject, text, html); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if d.Logger != nil {
		d.Logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	}
	return nil
}
