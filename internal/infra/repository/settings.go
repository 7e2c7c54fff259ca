package repository

import (
	"context"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

func (r *ShopRepository) GetSettings(_ context.Context) (models.ShopSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.settings, nil
}

func (r *ShopRepository) SaveSettings(ctx context.Context, s models.ShopSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = s
	return r.put(ctx, KeySettings, s)
}

func (r *ShopRepository) GetNotificationSettings(_ context.Context) (models.NotificationSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.notificationSettings, nil
}

func (r *ShopRepository) SaveNotificationSettings(ctx context.Context, s models.NotificationSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notificationSettings = s
	return r.put(ctx, KeyNotificationSettings, s)
}
