package attendance

import (
	"time"
)

// Status labels persisted on a record. Checked-in holds exactly while the
// record has no check-out instant.
const (
	StatusCheckedIn  = "Checked-in"
	StatusCheckedOut = "Checked-out"
)

// Record is one attendance row: created by a check-in, mutated exactly once
// by the matching check-out, never deleted.
type Record struct {
	ID        string
	UserID    string
	CompanyID string
	CheckIn   time.Time
	CheckOut  *time.Time
	Status    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is the in-memory view of a record's state. The store persists it
// as a nullable check_out column; code branches on the variant, not on the
// pointer.
type Session interface {
	CheckInTime() time.Time

	// HoursWorked returns elapsed fractional hours. An open session measures
	// against now, a closed one against its check-out instant.
	HoursWorked(now time.Time) float64
}

type OpenSession struct {
	CheckIn time.Time
}

func (s OpenSession) CheckInTime() time.Time { return s.CheckIn }

func (s OpenSession) HoursWorked(now time.Time) float64 {
	return hoursBetween(s.CheckIn, now)
}

type ClosedSession struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (s ClosedSession) CheckInTime() time.Time { return s.CheckIn }

func (s ClosedSession) HoursWorked(now time.Time) float64 {
	return hoursBetween(s.CheckIn, s.CheckOut)
}

func hoursBetween(from, to time.Time) float64 {
	secs := to.Sub(from).Seconds()
	if secs < 0 {
		return 0
	}
	return secs / 3600
}

// Session returns the tagged variant for the record.
func (r Record) Session() Session {
	if r.CheckOut == nil {
		return OpenSession{CheckIn: r.CheckIn}
	}
	return ClosedSession{CheckIn: r.CheckIn, CheckOut: *r.CheckOut}
}

// IsOpen reports whether the record is an active session.
func (r Record) IsOpen() bool {
	return r.CheckOut == nil
}

// HoursWorked returns the record's worked hours as of now.
func (r Record) HoursWorked(now time.Time) float64 {
	return r.Session().HoursWorked(now)
}
