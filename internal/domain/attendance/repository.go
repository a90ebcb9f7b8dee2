package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. Every method takes
// the owning user and company ids so tenant isolation is enforced inside the
// query itself rather than trusted to callers.
type Repository interface {
	// Insert creates a new record. The store must reject a second open
	// session for the same user (partial unique index on check_out IS NULL);
	// that rejection surfaces as ErrAlreadyCheckedIn.
	Insert(ctx context.Context, rec Record) (Record, error)

	// Close sets the check-out instant on the given open record and flips
	// its status to Checked-out. Returns ErrNoActiveSession when the record
	// is gone or already closed.
	Close(ctx context.Context, id string, userID string, companyID string, checkOut time.Time) (Record, error)

	// FindOpenSession returns the user's record with no check-out yet, nil
	// when there is none, ErrMultipleOpenSessions when more than one exists.
	FindOpenSession(ctx context.Context, userID string, companyID string) (*Record, error)

	// FindLatest returns the most recent record by check-in regardless of
	// week, nil when the user has no records at all.
	FindLatest(ctx context.Context, userID string, companyID string) (*Record, error)

	// FindRange returns records whose check-in falls within [from, to),
	// ordered by check-in descending.
	FindRange(ctx context.Context, userID string, companyID string, from time.Time, to time.Time) ([]Record, error)
}
