package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

// openSessionIndex is the partial unique index on (user_id) WHERE check_out
// IS NULL. It is the store-level guard that makes two concurrent check-ins
// for one user impossible; the application-level pre-check only exists for
// friendlier sequential errors.
const openSessionIndex = "attendance_records_one_open_per_user"

const recordColumns = `id, user_id, company_id, check_in, check_out, status, notes, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Insert implements attendance.Repository.
func (a *attendanceRepository) Insert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	query := `
		INSERT INTO attendance_records (user_id, company_id, check_in, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := a.db.QueryRow(ctx, query,
		rec.UserID,
		rec.CompanyID,
		rec.CheckIn,
		rec.Status,
		rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == openSessionIndex {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return rec, nil
}

// Close implements attendance.Repository.
func (a *attendanceRepository) Close(ctx context.Context, id string, userID string, companyID string, checkOut time.Time) (attendance.Record, error) {
	// check_out IS NULL in the WHERE keeps the close conditional: a session
	// closed by a concurrent request turns this into zero rows instead of a
	// second mutation.
	query := `
		UPDATE attendance_records
		SET check_out = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		  AND user_id = $4
		  AND company_id = $5
		  AND check_out IS NULL
		RETURNING ` + recordColumns

	rec, err := scanRecord(a.db.QueryRow(ctx, query, checkOut, attendance.StatusCheckedOut, id, userID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrNoActiveSession
		}
		return attendance.Record{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return rec, nil
}

// FindOpenSession implements attendance.Repository.
func (a *attendanceRepository) FindOpenSession(ctx context.Context, userID string, companyID string) (*attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND company_id = $2
		  AND check_out IS NULL
		ORDER BY check_in DESC
	`

	rows, err := a.db.Query(ctx, query, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query open session: %w", err)
	}
	defer rows.Close()

	var open []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open session: %w", err)
		}
		open = append(open, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read open sessions: %w", err)
	}

	switch len(open) {
	case 0:
		return nil, nil
	case 1:
		return &open[0], nil
	default:
		return nil, attendance.ErrMultipleOpenSessions
	}
}

// FindLatest implements attendance.Repository.
func (a *attendanceRepository) FindLatest(ctx context.Context, userID string, companyID string) (*attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND company_id = $2
		ORDER BY check_in DESC
		LIMIT 1
	`

	rec, err := scanRecord(a.db.QueryRow(ctx, query, userID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest attendance record: %w", err)
	}

	return &rec, nil
}

// FindRange implements attendance.Repository.
func (a *attendanceRepository) FindRange(ctx context.Context, userID string, companyID string, from time.Time, to time.Time) ([]attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND company_id = $2
		  AND check_in >= $3
		  AND check_in < $4
		ORDER BY check_in DESC
	`

	rows, err := a.db.Query(ctx, query, userID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.CompanyID,
		&rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
