package attendance

import "errors"

// Attendance domain errors
var (
	// State machine preconditions
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrNoActiveSession  = errors.New("no active session")

	// More than one open record for one user means the single-active-session
	// invariant has been broken (bug or manual data edit). Surfaced loudly,
	// never tie-broken.
	ErrMultipleOpenSessions = errors.New("multiple open attendance sessions for user")

	ErrRecordNotFound = errors.New("attendance record not found")
)
