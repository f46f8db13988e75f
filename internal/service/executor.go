package service

import (
	"context"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/tempo"
)

type submitService struct {
	tempo    tempo.Client
	reporter Reporter
}

// NewSubmitService creates the best-effort submission executor. Each
// entry is submitted on its own; a failure is recorded and the next
// entry is still attempted. There is no rollback of already-created
// worklogs.
func NewSubmitService(client tempo.Client, reporter Reporter) SubmitService {
	if reporter == nil {
		reporter = NoopReporter{}
	}
	return &submitService{tempo: client, reporter: reporter}
}

func (s *submitService) Submit(ctx context.Context, batch *domain.ReconciliationBatch) []domain.SubmissionOutcome {
	outcomes := make([]domain.SubmissionOutcome, 0, len(batch.Entries))
	for _, entry := range batch.Entries {
		outcome := domain.SubmissionOutcome{Entry: entry, Status: domain.SubmissionSucceeded}

		err := s.tempo.CreateWorklog(ctx, tempo.Worklog{
			IssueKey:    entry.IssueKey,
			Date:        entry.Date,
			Duration:    entry.Duration,
			Description: entry.Description,
		})
		if err != nil {
			outcome.Status = domain.SubmissionFailed
			outcome.Reason = err.Error()
		}

		s.reporter.EntrySubmitted(outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
