package appointment

import "github.com/BruksfildServices01/quickcut/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var allStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ===============================
// Validations
// ===============================

func Statuses() []Status {
	return append([]Status(nil), allStatuses...)
}

func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsActive reports whether the appointment still occupies the barber's chair.
func IsActive(s Status) bool {
	return s == StatusScheduled || s == StatusConfirmed || s == StatusInProgress
}

// IsWaiting reports whether the appointment counts toward the current queue.
func IsWaiting(s Status) bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func InitialStatus() Status {
	return StatusScheduled
}
