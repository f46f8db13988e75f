package toggl

import "errors"

var (
	// ErrUnavailable indicates the Toggl Track API could not be
	// reached at all.
	ErrUnavailable = errors.New("toggl track unreachable")

	// ErrRequestFailed indicates the Toggl Track API rejected a
	// request (auth failure, bad payload, server error).
	ErrRequestFailed = errors.New("toggl track request failed")
)
