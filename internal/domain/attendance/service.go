package attendance

import (
	"context"
)

// Service defines the attendance operations exposed to the HTTP layer. The
// identity context is read from ctx; it is placed there by the auth
// middleware before any of these run.
type Service interface {
	// CheckIn opens a new session for the caller. Fails with
	// ErrAlreadyCheckedIn when one is already open.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the caller's open session. Fails with
	// ErrNoActiveSession when there is none.
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// GetStatus reports the caller's most recent record regardless of week,
	// or the not-checked-in sentinel when no records exist.
	GetStatus(ctx context.Context) (StatusResponse, error)

	// GetWeekRecords lists the caller's records for the current calendar
	// week together with per-day worked-hour totals.
	GetWeekRecords(ctx context.Context) (WeekRecordsResponse, error)
}
