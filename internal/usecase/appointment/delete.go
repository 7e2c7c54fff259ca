package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, appointmentID uint) error {
	ok, err := uc.repo.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: appointmentID,
		Message:  fmt.Sprintf("Appointment #%d deleted", appointmentID),
		Type:     models.NotificationWarning,
	})
	return nil
}
