package dashboard

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/dto"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

// Source is the read side of the shop data the dashboard aggregates.
type Source interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
	GetSettings(ctx context.Context) (models.ShopSettings, error)
}

type Stats struct {
	TodayAppointments int     `json:"today_appointments"`
	CurrentQueue      int     `json:"current_queue"`
	TodayRevenue      float64 `json:"today_revenue"`
	ActiveBarbers     int     `json:"active_barbers"`
	ActiveServices    int     `json:"active_services"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCustomers    int     `json:"total_customers"`
	UnreadAlerts      int     `json:"unread_notifications"`
}

type Dashboard struct {
	src Source
	now func(tz string) string
}

func New(src Source) *Dashboard {
	return &Dashboard{src: src, now: timezone.Today}
}

// Stats recomputes every figure from the current collections.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	snap, today, err := d.load(ctx)
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	for _, ap := range snap.Appointments {
		s.TotalRevenue += ap.Amount
		if ap.Date != today {
			continue
		}
		s.TodayAppointments++
		s.TodayRevenue += ap.Amount
		if domain.IsWaiting(domain.Status(ap.Status)) {
			s.CurrentQueue++
		}
	}
	for _, b := range snap.Barbers {
		if b.Status == "active" {
			s.ActiveBarbers++
		}
	}
	for _, svc := range snap.Services {
		if svc.Status == "active" {
			s.ActiveServices++
		}
	}
	for _, n := range snap.Notifications {
		if !n.Read {
			s.UnreadAlerts++
		}
	}
	s.TotalCustomers = len(snap.Customers)

	return s, nil
}

// Today lists today's appointments in chronological order.
func (d *Dashboard) Today(ctx context.Context) ([]dto.AppointmentView, error) {
	snap, today, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	var todays []models.Appointment
	for _, ap := range snap.Appointments {
		if ap.Date == today {
			todays = append(todays, ap)
		}
	}
	sort.SliceStable(todays, func(i, j int) bool {
		if todays[i].StartMinute != todays[j].StartMinute {
			return todays[i].StartMinute < todays[j].StartMinute
		}
		return todays[i].ID < todays[j].ID
	})

	return dto.NewDirectory(snap).Views(todays), nil
}

func (d *Dashboard) load(ctx context.Context) (models.Snapshot, string, error) {
	settings, err := d.src.GetSettings(ctx)
	if err != nil {
		return models.Snapshot{}, "", err
	}
	snap, err := d.src.Snapshot(ctx)
	if err != nil {
		return models.Snapshot{}, "", err
	}
	return snap, d.now(settings.Timezone), nil
}
