package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

func appointmentID(a models.Appointment) uint { return a.ID }

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ShopRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	ap.ID = allocateID(r, KeyAppointments, r.appointments, appointmentID, defaultSeed)
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	ap.UpdatedAt = now

	r.appointments = append(r.appointments, *ap)
	return r.saveAll(ctx)
}

func (r *ShopRepository) GetAppointment(_ context.Context, id uint) (models.Appointment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.appointments, appointmentID, id)
	if i < 0 {
		return models.Appointment{}, false, nil
	}
	return r.appointments[i], true, nil
}

func (r *ShopRepository) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clone(r.appointments), nil
}

// UpdateAppointment applies fn to the stored record under the lock, passing
// the repository clock. A record that gains CompletedAt here for the first
// time credits its customer and barber in the same write. An error from fn
// leaves the record untouched.
func (r *ShopRepository) UpdateAppointment(
	ctx context.Context,
	id uint,
	fn func(ap *models.Appointment, now time.Time) error,
) (models.Appointment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.appointments, appointmentID, id)
	if i < 0 {
		return models.Appointment{}, false, nil
	}

	stored := r.appointments[i]
	ap := stored
	now := r.now()
	if err := fn(&ap, now); err != nil {
		return models.Appointment{}, true, err
	}
	ap.ID = id
	ap.UpdatedAt = now
	r.appointments[i] = ap

	if stored.CompletedAt == nil && ap.CompletedAt != nil {
		r.credit(ap, now)
	}

	return ap, true, r.saveAll(ctx)
}

// credit adds a completed appointment to its customer and barber totals.
// Callers hold r.mu.
func (r *ShopRepository) credit(ap models.Appointment, now time.Time) {
	if ci := indexOf(r.customers, customerID, ap.CustomerID); ci >= 0 {
		c := &r.customers[ci]
		c.Appointments++
		c.TotalSpent += ap.Amount
		c.Status = deriveCustomerStatus(c.Appointments)
		c.UpdatedAt = now
	}
	if bi := indexOf(r.barbers, barberID, ap.BarberID); bi >= 0 {
		b := &r.barbers[bi]
		b.Appointments++
		b.Earnings += ap.Amount
		b.UpdatedAt = now
	}
}

func (r *ShopRepository) DeleteAppointment(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.appointments, appointmentID, id)
	if i < 0 {
		return false, nil
	}
	r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
	return true, r.saveAll(ctx)
}
