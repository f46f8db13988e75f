package service

import (
	"context"
	"fmt"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/timeutil"
)

type sessionService struct {
	source    EntrySource
	submitter SubmitService
	confirmer Confirmer
	reporter  Reporter
	state     domain.SessionState
}

// NewSessionService wires one reconciliation run. A session is
// single-use: it owns its batch and is discarded with it.
func NewSessionService(source EntrySource, submitter SubmitService, confirmer Confirmer, reporter Reporter) SessionService {
	if reporter == nil {
		reporter = NoopReporter{}
	}
	return &sessionService{
		source:    source,
		submitter: submitter,
		confirmer: confirmer,
		reporter:  reporter,
		state:     domain.StateResolving,
	}
}

func (s *sessionService) Run(ctx context.Context, date time.Time) (*RunReport, error) {
	raws, err := s.source.FetchEntries(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching entries for %s: %w", date.Format(timeutil.ISODate), err)
	}

	kept := FilterExcluded(raws, s.reporter)
	entries := NormalizeAll(date, kept, s.reporter)
	batch := &domain.ReconciliationBatch{Date: date, Entries: entries}

	if err := s.transition(domain.StateLoaded); err != nil {
		return nil, err
	}
	s.reporter.BatchLoaded(batch)

	if batch.Empty() {
		// Nothing survived filtering and normalization; there is
		// nothing to confirm or submit.
		return &RunReport{Batch: batch}, nil
	}

	ok, err := s.confirmer.Confirm(fmt.Sprintf(
		"Log these %d entries (%s total) for %s?",
		len(batch.Entries), timeutil.FormatDuration(batch.Total()), date.Format(timeutil.ISODate)))
	if err != nil {
		return nil, fmt.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		return nil, ErrDeclined
	}
	if err := s.transition(domain.StatePreviewConfirmed); err != nil {
		return nil, err
	}

	ok, err = s.confirmer.Confirm(fmt.Sprintf(
		"Really submit %d worklogs to Tempo now?", len(batch.Entries)))
	if err != nil {
		return nil, fmt.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		return nil, ErrDeclined
	}
	if err := s.transition(domain.StateSubmitting); err != nil {
		return nil, err
	}

	outcomes := s.submitter.Submit(ctx, batch)
	s.reporter.BatchSubmitted(outcomes)

	if err := s.transition(domain.StateDone); err != nil {
		return nil, err
	}
	return &RunReport{Batch: batch, Outcomes: outcomes}, nil
}

// transition moves the session forward by exactly one state. Any other
// move aborts the run.
func (s *sessionService) transition(to domain.SessionState) error {
	if domain.NextSessionStates[s.state] != to {
		return fmt.Errorf("illegal session transition %s -> %s", s.state, to)
	}
	s.state = to
	return nil
}
