package domain

type SubmissionStatus string

const (
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// SubmissionOutcome pairs one submitted entry with its result. Reason
// is set only for failures.
type SubmissionOutcome struct {
	Entry  TimeEntry
	Status SubmissionStatus
	Reason string
}

// Failed reports whether the submission did not go through.
func (o SubmissionOutcome) Failed() bool {
	return o.Status == SubmissionFailed
}
