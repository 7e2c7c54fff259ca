package repository

import (
	"context"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

const (
	ServiceActive   = models.CatalogActive
	ServiceInactive = "inactive"
)

func serviceID(s models.Service) uint { return s.ID }

func (r *ShopRepository) CreateService(ctx context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s.ID = allocateID(r, KeyServices, r.services, serviceID, defaultSeed)
	if s.Status == "" {
		s.Status = ServiceActive
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	r.services = append(r.services, *s)
	return r.saveAll(ctx)
}

func (r *ShopRepository) GetService(_ context.Context, id uint) (models.Service, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.services, serviceID, id)
	if i < 0 {
		return models.Service{}, false, nil
	}
	return r.services[i], true, nil
}

func (r *ShopRepository) ListServices(_ context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clone(r.services), nil
}

func (r *ShopRepository) UpdateService(ctx context.Context, id uint, fn func(*models.Service)) (models.Service, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.services, serviceID, id)
	if i < 0 {
		return models.Service{}, false, nil
	}

	s := r.services[i]
	fn(&s)
	s.ID = id
	s.UpdatedAt = r.now()
	r.services[i] = s

	return s, true, r.saveAll(ctx)
}

func (r *ShopRepository) DeleteService(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.services, serviceID, id)
	if i < 0 {
		return false, nil
	}
	r.services = append(r.services[:i], r.services[i+1:]...)
	return true, r.saveAll(ctx)
}
