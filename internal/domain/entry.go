package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExclusionTag marks a raw entry that must never be logged. Entries
// carrying it are dropped before normalization.
const ExclusionTag = "nolog"

// RawEntry is the source-specific record produced by an entry source.
// It is discarded after normalization.
type RawEntry struct {
	// ProjectLabel is free text. Its first whitespace-delimited token
	// is the issue key; the file source stores the key alone.
	ProjectLabel string
	Description  string
	Duration     time.Duration
	Tags         []string
	// SourceID identifies the record on the source side, when the
	// source has one (Toggl entry ID, report-file line number).
	SourceID string
}

// Excluded reports whether the entry carries the exclusion tag.
func (r RawEntry) Excluded() bool {
	for _, tag := range r.Tags {
		if tag == ExclusionTag {
			return true
		}
	}
	return false
}

// TimeEntry is the canonical worklog candidate: one issue, one day,
// one duration. Immutable after normalization.
type TimeEntry struct {
	Date        time.Time
	IssueKey    string
	Duration    time.Duration
	Description string
}

// Validate checks the invariants a TimeEntry must satisfy before it
// may enter a batch: non-empty issue key and description, positive
// duration.
func (e *TimeEntry) Validate() error {
	if strings.TrimSpace(e.IssueKey) == "" {
		return fmt.Errorf("%w: missing issue key", ErrValidation)
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: entry for %s has no description", ErrValidation, e.IssueKey)
	}
	if e.Duration <= 0 {
		return fmt.Errorf("%w: entry for %s has non-positive duration", ErrValidation, e.IssueKey)
	}
	return nil
}

// DateString returns the entry date in ISO calendar-date form.
func (e *TimeEntry) DateString() string {
	return e.Date.Format("2006-01-02")
}
