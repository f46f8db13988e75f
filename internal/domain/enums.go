package domain

// SessionState is the reconciliation session's position in the
// resolve-load-confirm-submit flow. Transitions only move forward;
// anything else aborts the run.
type SessionState string

const (
	StateResolving        SessionState = "resolving"
	StateLoaded           SessionState = "loaded"
	StatePreviewConfirmed SessionState = "preview_confirmed"
	StateSubmitting       SessionState = "submitting"
	StateDone             SessionState = "done"
)

// NextSessionStates is the closed set of legal forward transitions.
var NextSessionStates = map[SessionState]SessionState{
	StateResolving:        StateLoaded,
	StateLoaded:           StatePreviewConfirmed,
	StatePreviewConfirmed: StateSubmitting,
	StateSubmitting:       StateDone,
}
