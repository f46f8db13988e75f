package service

import (
	"context"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/tempo"
)

// fakeSource returns a canned entry slice or error.
type fakeSource struct {
	entries []domain.RawEntry
	err     error
}

func (f *fakeSource) FetchEntries(context.Context, time.Time) ([]domain.RawEntry, error) {
	return f.entries, f.err
}

// scriptedConfirmer answers prompts from a fixed script and records
// what it was asked.
type scriptedConfirmer struct {
	answers []bool
	prompts []string
}

func (c *scriptedConfirmer) Confirm(prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.answers) == 0 {
		return false, nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

// recordingReporter captures every event for assertions.
type recordingReporter struct {
	NoopReporter
	excluded  []domain.RawEntry
	skipped   []domain.RawEntry
	records   []string
	loaded    *domain.ReconciliationBatch
	submitted []domain.SubmissionOutcome
	summary   []domain.SubmissionOutcome
}

func (r *recordingReporter) EntryExcluded(raw domain.RawEntry, _ string) {
	r.excluded = append(r.excluded, raw)
}

func (r *recordingReporter) EntrySkipped(raw domain.RawEntry, _ error) {
	r.skipped = append(r.skipped, raw)
}

func (r *recordingReporter) RecordError(location string, _ error) {
	r.records = append(r.records, location)
}

func (r *recordingReporter) BatchLoaded(batch *domain.ReconciliationBatch) {
	r.loaded = batch
}

func (r *recordingReporter) EntrySubmitted(outcome domain.SubmissionOutcome) {
	r.submitted = append(r.submitted, outcome)
}

func (r *recordingReporter) BatchSubmitted(outcomes []domain.SubmissionOutcome) {
	r.summary = outcomes
}

// fakeTempo records worklogs and fails for issue keys in failKeys.
type fakeTempo struct {
	created  []tempo.Worklog
	failKeys map[string]error
}

func (f *fakeTempo) CreateWorklog(_ context.Context, w tempo.Worklog) error {
	if err, ok := f.failKeys[w.IssueKey]; ok {
		return err
	}
	f.created = append(f.created, w)
	return nil
}
