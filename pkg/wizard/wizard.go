// Package wizard drives the four-step application form: personal details,
// program choice, academic record and motivation. Field validation belongs
// to the server; the wizard only tracks the draft and the current step.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/oksasatya/wil-portal/pkg/client"
)

type Step int

const (
	StepPersonal Step = iota + 1
	StepProgram
	StepAcademic
	StepMotivation
	// StepSubmitted is terminal.
	StepSubmitted
)

// TotalSteps counts the form steps, excluding StepSubmitted.
const TotalSteps = int(StepMotivation)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepProgram:
		return "program"
	case StepAcademic:
		return "academic"
	case StepMotivation:
		return "motivation"
	case StepSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrUnknownField = errors.New("unknown application field")
	ErrSubmitted    = errors.New("application already submitted")
	ErrNotFinalStep = errors.New("submit is only allowed from the last step")
)

// MissingFieldsError is the server rejecting a draft for incomplete fields.
type MissingFieldsError struct {
	Message string
	Fields  []string
}

func (e *MissingFieldsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Submitter sends a completed draft.
type Submitter interface {
	SubmitApplication(ctx context.Context, app client.Application) (*client.ApplicationReceipt, error)
}

type Wizard struct {
	mu      sync.Mutex
	api     Submitter
	step    Step
	draft   client.Application
	receipt *client.ApplicationReceipt
}

func New(api Submitter) *Wizard {
	return &Wizard{api: api, step: StepPersonal}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Progress reports the current step out of TotalSteps. After submission it
// reports TotalSteps of TotalSteps.
func (w *Wizard) Progress() (step, total int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepSubmitted {
		return TotalSteps, TotalSteps
	}
	return int(w.step), TotalSteps
}

// Next advances one step. No-op on the last step and after submission.
func (w *Wizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < StepMotivation {
		w.step++
	}
}

// Prev goes back one step. No-op on the first step and after submission.
func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepPersonal && w.step != StepSubmitted {
		w.step--
	}
}

// Set writes one draft field by its wire name, e.g. "firstName". Fields of
// any step may be set from any step.
func (w *Wizard) Set(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepSubmitted {
		return ErrSubmitted
	}
	p := fieldPtr(&w.draft, field)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*p = value
	return nil
}

// Get reads one draft field by its wire name.
func (w *Wizard) Get(field string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := fieldPtr(&w.draft, field)
	if p == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return *p, nil
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() client.Application {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Receipt returns the acknowledgment once submitted.
func (w *Wizard) Receipt() (*client.ApplicationReceipt, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.receipt, w.receipt != nil
}

// Submit sends the draft. It is only allowed from StepMotivation. When the
// server rejects the draft for missing fields a *MissingFieldsError naming
// all of them is returned and the wizard stays put with the draft intact.
// On success the wizard becomes StepSubmitted and the draft is discarded.
func (w *Wizard) Submit(ctx context.Context) (*client.ApplicationReceipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepSubmitted:
		return nil, ErrSubmitted
	case StepMotivation:
	default:
		return nil, ErrNotFinalStep
	}

	receipt, err := w.api.SubmitApplication(ctx, w.draft)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest && len(apiErr.MissingFields) > 0 {
			return nil, &MissingFieldsError{Message: apiErr.Message, Fields: apiErr.MissingFields}
		}
		return nil, fmt.Errorf("submit application: %w", err)
	}

	w.step = StepSubmitted
	w.receipt = receipt
	w.draft = client.Application{}
	return receipt, nil
}
