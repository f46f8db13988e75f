package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
)

// NormalizeEntry converts one raw entry into its canonical form. The
// issue key is the first whitespace-delimited token of the project
// label; sources that already know the key store it as the whole
// label.
func NormalizeEntry(date time.Time, raw domain.RawEntry) (domain.TimeEntry, error) {
	fields := strings.Fields(raw.ProjectLabel)
	if len(fields) == 0 {
		return domain.TimeEntry{}, fmt.Errorf(
			"%w: entry %q has no project assigned, cannot determine the issue key",
			domain.ErrValidation, raw.Description)
	}

	entry := domain.TimeEntry{
		Date:        date,
		IssueKey:    fields[0],
		Duration:    raw.Duration,
		Description: raw.Description,
	}
	if err := entry.Validate(); err != nil {
		return domain.TimeEntry{}, err
	}
	return entry, nil
}

// NormalizeAll maps raw entries to canonical entries, preserving input
// order. Invalid entries are reported and skipped; they never abort
// the rest.
func NormalizeAll(date time.Time, raws []domain.RawEntry, reporter Reporter) []domain.TimeEntry {
	entries := make([]domain.TimeEntry, 0, len(raws))
	for _, raw := range raws {
		entry, err := NormalizeEntry(date, raw)
		if err != nil {
			reporter.EntrySkipped(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
