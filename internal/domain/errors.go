package domain

import "errors"

var (
	// ErrFormat indicates malformed input: an unparseable duration
	// token, a bad date string, or a report-file line that does not
	// follow the record format.
	ErrFormat = errors.New("malformed input")

	// ErrValidation indicates an entry that failed normalization and
	// was skipped. It never aborts the run.
	ErrValidation = errors.New("entry validation failed")
)
