package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/identity"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Conflicts carry an
// actionable message; everything unexpected stays opaque so store details
// never leak to callers.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity errors
	case errors.Is(err, identity.ErrMissingIdentity):
		Unauthorized(w, "Missing or invalid identity")
	case errors.Is(err, identity.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in. Please check out first.", nil)
	case errors.Is(err, attendance.ErrNoActiveSession):
		BadRequest(w, "No active session found. Please check in first.", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default (covers store failures and broken invariants)
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
