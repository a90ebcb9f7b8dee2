package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/identity"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	attendance.Repository
	clock clock.Clock
}

func NewAttendanceService(repo attendance.Repository, clk clock.Clock) attendance.Service {
	return &AttendanceServiceImpl{
		Repository: repo,
		clock:      clk,
	}
}

// CheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	id, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	// Read-then-insert is not atomic. This lookup produces the conflict
	// error for the ordinary sequential case; the store's partial unique
	// index is what stops two concurrent check-ins from both committing.
	open, err := a.Repository.FindOpenSession(ctx, id.UserID, id.CompanyID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := a.clock.Now()
	created, err := a.Repository.Insert(ctx, attendance.Record{
		UserID:    id.UserID,
		CompanyID: id.CompanyID,
		CheckIn:   now,
		Status:    attendance.StatusCheckedIn,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			// Lost the race to a concurrent check-in.
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.CheckInResponse{
		ID:      created.ID,
		CheckIn: created.CheckIn,
		Status:  created.Status,
	}, nil
}

// CheckOut implements attendance.Service.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	id, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	open, err := a.Repository.FindOpenSession(ctx, id.UserID, id.CompanyID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoActiveSession
	}

	now := a.clock.Now()
	closed, err := a.Repository.Close(ctx, open.ID, id.UserID, id.CompanyID, now)
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveSession) {
			return attendance.CheckOutResponse{}, attendance.ErrNoActiveSession
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return attendance.CheckOutResponse{
		ID:       closed.ID,
		CheckIn:  closed.CheckIn,
		CheckOut: *closed.CheckOut,
		Status:   closed.Status,
	}, nil
}

// GetStatus implements attendance.Service. Deliberately not week-scoped: a
// session opened Sunday 23:58 must still show as checked in Monday 00:02.
func (a *AttendanceServiceImpl) GetStatus(ctx context.Context) (attendance.StatusResponse, error) {
	id, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	// Guard the invariant before answering from FindLatest alone.
	if _, err := a.Repository.FindOpenSession(ctx, id.UserID, id.CompanyID); err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}

	latest, err := a.Repository.FindLatest(ctx, id.UserID, id.CompanyID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get latest attendance record: %w", err)
	}
	if latest == nil {
		return attendance.StatusResponse{
			Status:      attendance.StatusNotCheckedIn,
			IsCheckedIn: false,
		}, nil
	}

	resp := attendance.StatusResponse{
		Status:       latest.Status,
		IsCheckedIn:  latest.IsOpen(),
		CheckInTime:  &latest.CheckIn,
		CheckOutTime: latest.CheckOut,
	}

	if latest.IsOpen() {
		elapsed := int64(a.clock.Now().Sub(latest.CheckIn).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}
		resp.ElapsedSeconds = &elapsed
	}

	return resp, nil
}

// GetWeekRecords implements attendance.Service.
func (a *AttendanceServiceImpl) GetWeekRecords(ctx context.Context) (attendance.WeekRecordsResponse, error) {
	id, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.WeekRecordsResponse{}, err
	}

	now := a.clock.Now()
	week := attendance.WeekOf(now)

	// One query feeds both the listing and the daily summary so the two can
	// never disagree on the week window or the totals.
	recs, err := a.Repository.FindRange(ctx, id.UserID, id.CompanyID, week.Start, week.End)
	if err != nil {
		return attendance.WeekRecordsResponse{}, fmt.Errorf("failed to get week records: %w", err)
	}

	records := make([]attendance.RecordResponse, 0, len(recs))
	for _, rec := range recs {
		records = append(records, attendance.RecordResponse{
			ID:          rec.ID,
			CheckIn:     rec.CheckIn,
			CheckOut:    rec.CheckOut,
			Status:      rec.Status,
			Notes:       rec.Notes,
			HoursWorked: rec.HoursWorked(now),
		})
	}

	return attendance.WeekRecordsResponse{
		Records:    records,
		DailyHours: buildDailySummary(recs, now),
	}, nil
}

// buildDailySummary groups records by the calendar date of their check-in
// (a record spanning midnight is never split) and sums worked hours per
// date, ascending.
func buildDailySummary(recs []attendance.Record, now time.Time) []attendance.DailyHours {
	type bucket struct {
		day   time.Time
		total float64
	}

	loc := now.Location()
	buckets := make(map[string]*bucket)
	for _, rec := range recs {
		day := rec.CheckIn.In(loc)
		key := day.Format(dateLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: day}
			buckets[key] = b
		}
		b.total += rec.HoursWorked(now)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary := make([]attendance.DailyHours, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		summary = append(summary, attendance.DailyHours{
			Date:       key,
			DayOfWeek:  attendance.DayOfWeek(b.day),
			DayName:    attendance.DayName(b.day),
			TotalHours: b.total,
		})
	}

	return summary
}
