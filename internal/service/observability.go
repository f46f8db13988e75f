package service

import "github.com/verkkoraita/toggltempo/internal/domain"

// Reporter receives operator-visible events as a run progresses.
// Nothing here affects control flow; declining to show an event never
// changes what gets submitted.
type Reporter interface {
	// DateResolved fires when the workday resolver picked the target
	// date because none was given.
	DateResolved(date string, reason string)

	// EntryExcluded fires when the tag filter drops a raw entry.
	EntryExcluded(raw domain.RawEntry, reason string)

	// EntrySkipped fires when normalization rejects a raw entry.
	EntrySkipped(raw domain.RawEntry, err error)

	// RecordError fires for a malformed source record that was skipped
	// (e.g. a bad report-file line). location names the record.
	RecordError(location string, err error)

	// BatchLoaded fires once the surviving entries are assembled,
	// before the preview confirmation.
	BatchLoaded(batch *domain.ReconciliationBatch)

	// EntrySubmitted fires after each individual submission attempt.
	EntrySubmitted(outcome domain.SubmissionOutcome)

	// BatchSubmitted fires once with all outcomes after the last
	// attempt.
	BatchSubmitted(outcomes []domain.SubmissionOutcome)
}

// NoopReporter discards all events. Useful for tests.
type NoopReporter struct{}

func (NoopReporter) DateResolved(string, string)               {}
func (NoopReporter) EntryExcluded(domain.RawEntry, string)     {}
func (NoopReporter) EntrySkipped(domain.RawEntry, error)       {}
func (NoopReporter) RecordError(string, error)                 {}
func (NoopReporter) BatchLoaded(*domain.ReconciliationBatch)   {}
func (NoopReporter) EntrySubmitted(domain.SubmissionOutcome)   {}
func (NoopReporter) BatchSubmitted([]domain.SubmissionOutcome) {}
