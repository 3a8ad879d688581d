package application

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/pkg/mailer"
	tpl "github.com/oksasatya/wil-portal/pkg/mailer/templates"
	"github.com/oksasatya/wil-portal/pkg/validation"
)

// Publisher enqueues notification jobs. A nil Publisher disables notifications.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// SubmissionService validates and acknowledges application and contact
// submissions. Nothing is stored; accepted submissions are logged and, when
// a publisher is configured, turned into confirmation email jobs.
type SubmissionService struct {
	Publisher Publisher
	Logger    *logrus.Logger
	AppName   string

	validate *validator.Validate
	now      func() time.Time
}

func NewSubmissionService(pub Publisher, logger *logrus.Logger, appName string) *SubmissionService {
	return &SubmissionService{
		Publisher: pub,
		Logger:    logger,
		AppName:   appName,
		validate:  validation.New(),
		now:       time.Now,
	}
}

// SubmitApplication requires firstName, lastName, email, studentId and
// program. A missing-field error names all of them at once.
func (s *SubmissionService) SubmitApplication(ctx context.Context, app entity.Application) (*entity.ApplicationReceipt, error) {
	if err := s.validate.Struct(app); err != nil {
		return nil, missingFieldsError(err, listMissing)
	}

	now := s.now().UTC()
	receipt := &entity.ApplicationReceipt{
		ApplicationID: "APP-" + strconv.FormatInt(now.UnixMilli(), 10),
		SubmittedAt:   now,
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"application_id": receipt.ApplicationID,
			"name":           app.FirstName + " " + app.LastName,
			"email":          app.Email,
			"program":        app.Program,
		}).Info("application received")
	}

	s.publish(ctx, mailer.EmailJob{
		To:       app.Email,
		Template: tpl.ApplicationReceived,
		Data: tpl.ToMap(tpl.EmailData{
			Name:          app.FirstName + " " + app.LastName,
			Email:         app.Email,
			AppName:       s.AppName,
			ApplicationID: receipt.ApplicationID,
			Program:       app.Program,
			SubmittedAt:   receipt.SubmittedAt,
		}),
	})
	return receipt, nil
}

// SubmitContact requires every field of the contact form.
func (s *SubmissionService) SubmitContact(ctx context.Context, msg entity.ContactMessage) (*entity.ContactReceipt, error) {
	if err := s.validate.Struct(msg); err != nil {
		return nil, missingFieldsError(err, func([]string) string { return "All fields are required" })
	}

	now := s.now().UTC()
	receipt := &entity.ContactReceipt{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		ReceivedAt: now,
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"contact_id": receipt.ID,
			"name":       msg.Name,
			"email":      msg.Email,
			"subject":    msg.Subject,
		}).Info("contact message received")
	}

	s.publish(ctx, mailer.EmailJob{
		To:       msg.Email,
		Template: tpl.ContactReceived,
		Data: tpl.ToMap(tpl.EmailData{
			Name:      msg.Name,
			Email:     msg.Email,
			AppName:   s.AppName,
			ContactID: receipt.ID,
			Subject:   msg.Subject,
		}),
	})
	return receipt, nil
}

// publish is best-effort: a broker outage never fails a submission.
func (s *SubmissionService) publish(ctx context.Context, job mailer.EmailJob) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("template", job.Template).Warn("failed to publish notification job")
	}
}
