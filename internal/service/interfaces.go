package service

import (
	"context"
	"errors"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
)

// ErrDeclined is returned when the operator answers no at either
// confirmation point. It is a normal termination, not a failure.
var ErrDeclined = errors.New("declined by operator")

// EntrySource produces the raw entries tracked on a calendar day.
// Implemented by the Toggl adapter and the report-file adapter.
type EntrySource interface {
	FetchEntries(ctx context.Context, date time.Time) ([]domain.RawEntry, error)
}

// Confirmer asks the operator a yes/no question and blocks until
// answered.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// SubmitService sends every entry of an approved batch to the
// timesheet service, one at a time, and reports per-entry outcomes in
// input order.
type SubmitService interface {
	Submit(ctx context.Context, batch *domain.ReconciliationBatch) []domain.SubmissionOutcome
}

// RunReport is the terminal result of one reconciliation run.
type RunReport struct {
	Batch    *domain.ReconciliationBatch
	Outcomes []domain.SubmissionOutcome
}

// FailedCount returns how many submissions did not go through.
func (r *RunReport) FailedCount() int {
	var n int
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

// SessionService drives one resolve-load-confirm-submit run.
type SessionService interface {
	Run(ctx context.Context, date time.Time) (*RunReport, error)
}
