package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, ok, err := uc.repo.UpdateAppointment(ctx, appointmentID, func(ap *models.Appointment, now time.Time) error {
		domain.Transition(ap, to, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: ap.ID,
		Message:  fmt.Sprintf("Appointment #%d is now %s", ap.ID, to),
		Type:     statusNotificationType(to),
	})

	return &ap, nil
}

func statusNotificationType(s domain.Status) string {
	switch s {
	case domain.StatusCompleted:
		return models.NotificationSuccess
	case domain.StatusCancelled:
		return models.NotificationDanger
	default:
		return models.NotificationInfo
	}
}
