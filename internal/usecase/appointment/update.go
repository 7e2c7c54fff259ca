package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

// UpdateAppointmentInput is a partial update; nil fields are left alone.
type UpdateAppointmentInput struct {
	ID uint

	CustomerID *uint
	BarberID   *uint
	ServiceID  *uint

	Date     *string
	Time     *string
	Duration *int
	Notes    *string
	Status   *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute re-reads the referenced service on every update so the amount
// always equals its current price. References and formats are validated
// first; the changes are then applied to the stored record in one locked step.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	current, ok, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. References
	// --------------------------------------------------
	if in.CustomerID != nil {
		if _, ok, err := uc.repo.GetCustomer(ctx, *in.CustomerID); err != nil {
			return nil, err
		} else if !ok {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
	}

	if in.BarberID != nil {
		if _, ok, err := uc.repo.GetBarber(ctx, *in.BarberID); err != nil {
			return nil, err
		} else if !ok {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
	}

	serviceID := current.ServiceID
	if in.ServiceID != nil {
		serviceID = *in.ServiceID
	}
	service, ok, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 2. Formats
	// --------------------------------------------------
	if in.Date != nil {
		if _, err := timezone.ParseDate(settings.Timezone, *in.Date); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	minute := -1
	if in.Time != nil {
		if minute, err = timeofday.Parse(*in.Time); err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
	}

	var status *domain.Status
	if in.Status != nil {
		parsed, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	// --------------------------------------------------
	// 3. Apply + persist
	// --------------------------------------------------
	ap, ok, err := uc.repo.UpdateAppointment(ctx, in.ID, func(ap *models.Appointment, now time.Time) error {
		if in.CustomerID != nil {
			ap.CustomerID = *in.CustomerID
		}
		if in.BarberID != nil {
			ap.BarberID = *in.BarberID
		}

		serviceChanged := in.ServiceID != nil && *in.ServiceID != ap.ServiceID
		if in.ServiceID != nil {
			ap.ServiceID = *in.ServiceID
		}
		// a concurrent writer may have moved the record to another service
		if ap.ServiceID == service.ID {
			ap.Amount = service.Price
		}

		if in.Date != nil {
			ap.Date = *in.Date
		}
		if minute >= 0 {
			ap.StartMinute = minute
		}

		switch {
		case in.Duration != nil && *in.Duration > 0:
			ap.Duration = *in.Duration
		case serviceChanged || ap.Duration <= 0:
			ap.Duration = service.Duration
		}

		if in.Notes != nil {
			ap.Notes = strings.TrimSpace(*in.Notes)
		}

		if status != nil {
			domain.Transition(ap, *status, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
		Message:  fmt.Sprintf("Appointment #%d updated", ap.ID),
		Type:     models.NotificationInfo,
	})

	return &ap, nil
}
