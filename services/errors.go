package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrForbidden  = errors.New("not authorized to access this resource")
	ErrValidation = errors.New("validation failed")
	ErrInactive   = errors.New("deadline is not active for submissions")
	ErrConflict   = errors.New("submission already exists for this deadline")
)

// DeadlinePassedError reports a write attempted after the cutoff. It carries
// the timing context surfaced to the caller under "deadline_info".
type DeadlinePassedError struct {
	Deadline    time.Time `json:"deadline"`
	CurrentTime time.Time `json:"current_time"`
	TimePassed  string    `json:"time_passed"`
}

func NewDeadlinePassedError(deadline, now time.Time) *DeadlinePassedError {
	return &DeadlinePassedError{
		Deadline:    deadline,
		CurrentTime: now,
		TimePassed:  fmt.Sprintf("%d seconds past deadline", int64(now.Sub(deadline).Seconds())),
	}
}

func (e *DeadlinePassedError) Error() string {
	return "submission deadline has passed"
}

// HTTPStatusFromError maps service errors to HTTP status codes. Conflicts and
// inactive deadlines are 400s, matching the API contract rather than the
// usual 409.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var dpe *DeadlinePassedError
	if errors.As(err, &dpe) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrInactive) || errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 { // duplicate key
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// IsDuplicateKey reports whether err is a MySQL unique constraint violation.
// The submissions table carries a (deadline_id, submitted_by) unique index,
// so two racing creates cannot both land; the loser surfaces as a conflict.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
