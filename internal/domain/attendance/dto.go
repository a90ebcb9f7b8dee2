package attendance

import (
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

// StatusNotCheckedIn is the sentinel returned by GetStatus for an employee
// with no attendance records at all.
const StatusNotCheckedIn = "not-checked-in"

const maxNotesLength = 500

type CheckInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Notes != nil && len(*r.Notes) > maxNotesLength {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: validator.Itoa(maxNotesLength) + " characters maximum",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	ID      string    `json:"id"`
	CheckIn time.Time `json:"checkIn"`
	Status  string    `json:"status"`
}

type CheckOutResponse struct {
	ID       string    `json:"id"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Status   string    `json:"status"`
}

// StatusResponse reports the most recent record. ElapsedSeconds is present
// only while a session is open; it is recomputed on every poll, never
// persisted.
type StatusResponse struct {
	Status         string     `json:"status"`
	IsCheckedIn    bool       `json:"isCheckedIn"`
	CheckInTime    *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime   *time.Time `json:"checkOutTime,omitempty"`
	ElapsedSeconds *int64     `json:"elapsedSeconds,omitempty"`
}

// RecordResponse is a week-listing entry. HoursWorked for an open record is
// its in-progress duration at read time.
type RecordResponse struct {
	ID          string     `json:"id"`
	CheckIn     time.Time  `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut,omitempty"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	HoursWorked float64    `json:"hoursWorked"`
}

// DailyHours is one chart bucket: all records sharing a check-in date,
// summed. A record spanning midnight counts entirely toward its check-in
// date.
type DailyHours struct {
	Date       string  `json:"date"`
	DayOfWeek  int     `json:"dayOfWeek"`
	DayName    string  `json:"dayName"`
	TotalHours float64 `json:"totalHours"`
}

type WeekRecordsResponse struct {
	Records    []RecordResponse `json:"records"`
	DailyHours []DailyHours     `json:"dailyHours"`
}
