package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

type fakeSource struct {
	snap    models.Snapshot
	err     error
	setting models.ShopSettings
}

func (f fakeSource) Snapshot(context.Context) (models.Snapshot, error) { return f.snap, f.err }
func (f fakeSource) GetSettings(context.Context) (models.ShopSettings, error) {
	return f.setting, nil
}

func newDashboard(src Source) *Dashboard {
	d := New(src)
	d.now = func(string) string { return "2026-10-15" }
	return d
}

func sample() models.Snapshot {
	return models.Snapshot{
		Appointments: []models.Appointment{
			{ID: 1, BarberID: 1, CustomerID: 1001, ServiceID: 1, Date: "2026-10-15", StartMinute: 600, Amount: 250, Status: "scheduled"},
			{ID: 2, BarberID: 2, CustomerID: 1002, ServiceID: 2, Date: "2026-10-15", StartMinute: 540, Amount: 150, Status: "confirmed"},
			{ID: 3, BarberID: 1, CustomerID: 1001, ServiceID: 1, Date: "2026-10-15", StartMinute: 780, Amount: 250, Status: "completed"},
			{ID: 4, BarberID: 1, CustomerID: 1002, ServiceID: 1, Date: "2026-10-14", StartMinute: 540, Amount: 250, Status: "completed"},
		},
		Barbers: []models.Barber{
			{ID: 1, FirstName: "John", LastName: "Master", Status: "active"},
			{ID: 2, FirstName: "Mike", LastName: "Style", Status: "inactive"},
		},
		Services: []models.Service{
			{ID: 1, Name: "Classic Haircut", Status: "active"},
			{ID: 2, Name: "Beard Trim", Status: "active"},
		},
		Customers: []models.Customer{
			{ID: 1001, FirstName: "John", LastName: "Smith"},
			{ID: 1002, FirstName: "Mike", LastName: "Johnson"},
		},
		Notifications: []models.Notification{{ID: 1}, {ID: 2, Read: true}},
	}
}

func TestStats(t *testing.T) {
	got, err := newDashboard(fakeSource{snap: sample()}).Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	want := Stats{
		TodayAppointments: 3,
		CurrentQueue:      2,
		TodayRevenue:      650,
		ActiveBarbers:     1,
		ActiveServices:    2,
		TotalRevenue:      900,
		TotalCustomers:    2,
		UnreadAlerts:      1,
	}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func TestTodayIsChronological(t *testing.T) {
	got, err := newDashboard(fakeSource{snap: sample()}).Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}

	wantIDs := []uint{2, 1, 3}
	wantTimes := []string{"9:00 AM", "10:00 AM", "1:00 PM"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d, got %d", len(wantIDs), len(got))
	}
	for i := range got {
		if got[i].ID != wantIDs[i] || got[i].Time != wantTimes[i] {
			t.Errorf("row %d = #%d %s", i, got[i].ID, got[i].Time)
		}
	}
	if got[0].CustomerName != "Mike Johnson" || got[0].BarberName != "Mike Style" {
		t.Fatalf("join missing: %+v", got[0])
	}
}

func TestStatsPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := newDashboard(fakeSource{err: boom}).Stats(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
