package appointment

import (
	"time"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves the appointment to the target status. Any valid status
// may follow any other; completion and cancellation stamp their time once.
func Transition(ap *models.Appointment, to Status, now time.Time) {
	ap.Status = string(to)
	ap.UpdatedAt = now

	switch to {
	case StatusCompleted:
		if ap.CompletedAt == nil {
			ap.CompletedAt = &now
		}
	case StatusCancelled:
		if ap.CancelledAt == nil {
			ap.CancelledAt = &now
		}
	}
}

// Overlaps reports whether two minute ranges [aStart,aEnd) and [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
