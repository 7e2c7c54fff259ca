package repository

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

func notificationID(n models.Notification) uint { return n.ID }

// --------------------------------------------------
// Notification feed
// --------------------------------------------------

func (r *ShopRepository) AddNotification(ctx context.Context, message, typ string) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if typ == "" {
		typ = models.NotificationInfo
	}
	n := models.Notification{
		ID:        allocateID(r, KeyNotifications, r.notifications, notificationID, defaultSeed),
		Message:   message,
		Type:      typ,
		Timestamp: r.now(),
	}
	r.notifications = append(r.notifications, n)

	return n, r.saveAll(ctx)
}

// ListNotifications returns the feed newest first.
func (r *ShopRepository) ListNotifications(_ context.Context) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := clone(r.notifications)
	slices.Reverse(out)
	return out, nil
}

func (r *ShopRepository) UnreadNotifications(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, it := range r.notifications {
		if !it.Read {
			n++
		}
	}
	return n, nil
}

// MarkAllNotificationsRead flags every entry and returns how many changed.
func (r *ShopRepository) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.notifications {
		if !r.notifications[i].Read {
			r.notifications[i].Read = true
			changed++
		}
	}
	return changed, r.saveAll(ctx)
}

func (r *ShopRepository) ClearNotifications(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
	return r.saveAll(ctx)
}
