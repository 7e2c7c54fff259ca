package repository

import (
	"context"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

const (
	BarberActive   = models.CatalogActive
	BarberInactive = "inactive"

	DefaultBarberRating = 4.5
)

func barberID(b models.Barber) uint { return b.ID }

// CreateBarber starts every barber with no history and the default rating.
func (r *ShopRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b.ID = allocateID(r, KeyBarbers, r.barbers, barberID, defaultSeed)
	b.Appointments = 0
	b.Earnings = 0
	b.Rating = DefaultBarberRating
	if b.Status == "" {
		b.Status = BarberActive
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	r.barbers = append(r.barbers, *b)
	return r.saveAll(ctx)
}

func (r *ShopRepository) GetBarber(_ context.Context, id uint) (models.Barber, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.barbers, barberID, id)
	if i < 0 {
		return models.Barber{}, false, nil
	}
	return r.barbers[i], true, nil
}

func (r *ShopRepository) ListBarbers(_ context.Context) ([]models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clone(r.barbers), nil
}

// UpdateBarber applies fn to the stored record under the lock.
func (r *ShopRepository) UpdateBarber(ctx context.Context, id uint, fn func(*models.Barber)) (models.Barber, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.barbers, barberID, id)
	if i < 0 {
		return models.Barber{}, false, nil
	}

	b := r.barbers[i]
	fn(&b)
	b.ID = id
	b.UpdatedAt = r.now()
	r.barbers[i] = b

	return b, true, r.saveAll(ctx)
}

func (r *ShopRepository) DeleteBarber(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.barbers, barberID, id)
	if i < 0 {
		return false, nil
	}
	r.barbers = append(r.barbers[:i], r.barbers[i+1:]...)
	return true, r.saveAll(ctx)
}
