package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// CreateAppointmentInput identifies the customer either by CustomerID or
// by name and phone; the latter reuses a customer with the same phone.
type CreateAppointmentInput struct {
	CustomerID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	BarberID  uint
	ServiceID uint

	Date     string
	Time     string
	Duration int
	Notes    string

	// ActiveOnly rejects barbers and services withdrawn from the catalog.
	ActiveOnly bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. Date / time (minute-of-day)
	// --------------------------------------------------
	if _, err := timezone.ParseDate(settings.Timezone, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	minute, err := timeofday.Parse(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2. Service (price + default duration)
	// --------------------------------------------------
	service, ok, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if in.ActiveOnly && service.Status != models.CatalogActive {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	// --------------------------------------------------
	// 3. Barber
	// --------------------------------------------------
	barber, ok, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if in.ActiveOnly && barber.Status != models.CatalogActive {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	// --------------------------------------------------
	// 4. Customer (by id, or get-or-create by phone)
	// --------------------------------------------------
	customer, err := uc.resolveCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Create
	// --------------------------------------------------
	duration := in.Duration
	if duration <= 0 {
		duration = service.Duration
	}

	ap := &models.Appointment{
		CustomerID:  customer.ID,
		BarberID:    barber.ID,
		ServiceID:   service.ID,
		Date:        in.Date,
		StartMinute: minute,
		Duration:    duration,
		Amount:      service.Price,
		Status:      string(domain.InitialStatus()),
		Notes:       strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Feed
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Message: fmt.Sprintf(
			"New appointment #%d: %s with %s on %s at %s",
			ap.ID, customer.FullName(), barber.FullName(), ap.Date, timeofday.Format12h(ap.StartMinute),
		),
		Type: models.NotificationSuccess,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveCustomer(
	ctx context.Context,
	in CreateAppointmentInput,
) (models.Customer, error) {

	if in.CustomerID != 0 {
		c, ok, err := uc.repo.GetCustomer(ctx, in.CustomerID)
		if err != nil {
			return models.Customer{}, err
		}
		if !ok {
			return models.Customer{}, httperr.ErrBusiness("customer_not_found")
		}
		return c, nil
	}

	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return models.Customer{}, httperr.ErrBusiness("customer_required")
	}

	return uc.repo.GetOrCreateCustomer(ctx, in.CustomerName, in.CustomerPhone, in.CustomerEmail)
}
