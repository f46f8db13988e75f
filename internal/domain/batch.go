package domain

import "time"

// ReconciliationBatch is the ordered set of entries for a single
// target date, the unit the operator approves or rejects. It is owned
// by one run and never reused.
type ReconciliationBatch struct {
	Date    time.Time
	Entries []TimeEntry
}

// Total returns the grand total duration across all entries.
func (b *ReconciliationBatch) Total() time.Duration {
	var total time.Duration
	for _, e := range b.Entries {
		total += e.Duration
	}
	return total
}

// Empty reports whether the batch has no entries left to submit.
func (b *ReconciliationBatch) Empty() bool {
	return len(b.Entries) == 0
}
