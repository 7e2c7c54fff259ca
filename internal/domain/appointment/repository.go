package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

type Repository interface {
	// -------- Settings --------
	GetSettings(ctx context.Context) (models.ShopSettings, error)

	// -------- Catalog --------
	GetService(ctx context.Context, id uint) (models.Service, bool, error)
	GetBarber(ctx context.Context, id uint) (models.Barber, bool, error)

	// -------- Customer --------
	GetCustomer(ctx context.Context, id uint) (models.Customer, bool, error)
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (models.Customer, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (models.Appointment, bool, error)
	// UpdateAppointment runs fn on the stored record atomically and credits
	// the customer and barber when the record completes for the first time.
	UpdateAppointment(
		ctx context.Context,
		id uint,
		fn func(ap *models.Appointment, now time.Time) error,
	) (models.Appointment, bool, error)
	DeleteAppointment(ctx context.Context, id uint) (bool, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// Snapshot copies every collection, used to join names at render time.
	Snapshot(ctx context.Context) (models.Snapshot, error)
}
