package appointment

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/infra/kvstore/memory"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

const testDate = "2030-01-15"

type fixture struct {
	repo       *repository.ShopRepository
	dispatcher *audit.Dispatcher
	haircut    models.Service
	beard      models.Service
	john       models.Barber
	mike       models.Barber
	customer   models.Customer

	// pinned overrides the repository clock when set.
	pinned atomic.Pointer[time.Time]
}

func (f *fixture) now() time.Time {
	if at := f.pinned.Load(); at != nil {
		return *at
	}
	return time.Now()
}

func (f *fixture) pin(at time.Time) { f.pinned.Store(&at) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		haircut:    models.Service{Name: "Classic Haircut", Price: 250, Duration: 30, Category: "haircut"},
		beard:      models.Service{Name: "Beard Trim", Price: 150, Duration: 20, Category: "beard"},
		john:       models.Barber{FirstName: "John", LastName: "Master"},
		mike:       models.Barber{FirstName: "Mike", LastName: "Style"},
		customer:   models.Customer{FirstName: "John", LastName: "Smith", Phone: "+251911234567", Appointments: 9},
	}

	repo := repository.New(memory.New(), repository.Options{Prefix: "quickcut-", Now: f.now})
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	f.repo = repo
	f.dispatcher = audit.NewDispatcher(audit.New(repo))
	t.Cleanup(f.dispatcher.Close)

	for _, err := range []error{
		repo.CreateService(ctx, &f.haircut),
		repo.CreateService(ctx, &f.beard),
		repo.CreateBarber(ctx, &f.john),
		repo.CreateBarber(ctx, &f.mike),
		repo.CreateCustomer(ctx, &f.customer),
	} {
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return f
}

func (f *fixture) book(t *testing.T, barber uint, service uint, at string) *models.Appointment {
	t.Helper()
	ap, err := NewCreateAppointment(f.repo, f.dispatcher).Execute(context.Background(), CreateAppointmentInput{
		CustomerID: f.customer.ID,
		BarberID:   barber,
		ServiceID:  service,
		Date:       testDate,
		Time:       at,
	})
	if err != nil {
		t.Fatalf("book %s: %v", at, err)
	}
	return ap
}

func TestCreateAppointmentCopiesServicePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := NewCreateAppointment(f.repo, f.dispatcher).Execute(ctx, CreateAppointmentInput{
		CustomerName:  "Jane Doe",
		CustomerPhone: "+251 900 000 001",
		BarberID:      f.john.ID,
		ServiceID:     f.haircut.ID,
		Date:          testDate,
		Time:          "09:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ap.ID != 1 || ap.Amount != 250 || ap.Status != "scheduled" {
		t.Fatalf("unexpected appointment %+v", ap)
	}
	if ap.Duration != 30 || ap.StartMinute != 540 {
		t.Fatalf("unexpected schedule %+v", ap)
	}

	c, ok, _ := f.repo.GetCustomer(ctx, ap.CustomerID)
	if !ok || c.FirstName != "Jane" || c.LastName != "Doe" || c.ID != 1002 {
		t.Fatalf("customer not created from name/phone: %+v", c)
	}

	second := f.book(t, f.mike.ID, f.beard.ID, "10:15 AM")
	if second.ID != 2 || second.Amount != 150 || second.Duration != 20 {
		t.Fatalf("unexpected second appointment %+v", second)
	}

	f.dispatcher.Close()
	feed, _ := f.repo.ListNotifications(ctx)
	if len(feed) != 2 {
		t.Fatalf("expected 2 feed entries, got %d", len(feed))
	}
	if feed[1].Message != "New appointment #1: Jane Doe with John Master on 2030-01-15 at 9:00 AM" {
		t.Fatalf("unexpected feed message %q", feed[1].Message)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateAppointment(f.repo, f.dispatcher)

	base := CreateAppointmentInput{
		CustomerID: f.customer.ID,
		BarberID:   f.john.ID,
		ServiceID:  f.haircut.ID,
		Date:       testDate,
		Time:       "09:00",
	}

	tests := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
		code   string
	}{
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "15/01/2030" }, "invalid_date"},
		{"bad time", func(in *CreateAppointmentInput) { in.Time = "late" }, "invalid_time"},
		{"unknown service", func(in *CreateAppointmentInput) { in.ServiceID = 99 }, "service_not_found"},
		{"unknown barber", func(in *CreateAppointmentInput) { in.BarberID = 99 }, "barber_not_found"},
		{"unknown customer", func(in *CreateAppointmentInput) { in.CustomerID = 5 }, "customer_not_found"},
		{"no customer", func(in *CreateAppointmentInput) { in.CustomerID = 0; in.CustomerName = "Jane" }, "customer_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}

	list, _ := f.repo.ListAppointments(context.Background())
	if len(list) != 0 {
		t.Fatalf("failed creates must not persist, got %d", len(list))
	}
}

func TestUpdateAppointmentRecomputesAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")

	// price change on the service is picked up by the next update
	if _, _, err := f.repo.UpdateService(ctx, f.haircut.ID, func(s *models.Service) { s.Price = 300 }); err != nil {
		t.Fatalf("update service: %v", err)
	}
	notes := "window seat"
	got, err := NewUpdateAppointment(f.repo, f.dispatcher).Execute(ctx, UpdateAppointmentInput{ID: ap.ID, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Amount != 300 || got.Notes != "window seat" || got.Duration != 30 {
		t.Fatalf("unexpected update %+v", got)
	}

	beard := f.beard.ID
	at := "2:30 PM"
	got, err = NewUpdateAppointment(f.repo, f.dispatcher).Execute(ctx, UpdateAppointmentInput{ID: ap.ID, ServiceID: &beard, Time: &at})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Amount != 150 || got.Duration != 20 || got.StartMinute != 14*60+30 {
		t.Fatalf("service switch not applied: %+v", got)
	}

	missing := UpdateAppointmentInput{ID: 404}
	if _, err := NewUpdateAppointment(f.repo, f.dispatcher).Execute(ctx, missing); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestSetStatusCompletionCreditsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")
	uc := NewSetAppointmentStatus(f.repo, f.dispatcher)

	for _, s := range []string{"confirmed", "in-progress", "completed", "confirmed", "completed"} {
		if _, err := uc.Execute(ctx, ap.ID, s); err != nil {
			t.Fatalf("set %s: %v", s, err)
		}
	}

	c, _, _ := f.repo.GetCustomer(ctx, f.customer.ID)
	if c.Appointments != 10 || c.TotalSpent != 250 || c.Status != "vip" {
		t.Fatalf("customer credited incorrectly: %+v", c)
	}
	b, _, _ := f.repo.GetBarber(ctx, f.john.ID)
	if b.Appointments != 1 || b.Earnings != 250 {
		t.Fatalf("barber credited incorrectly: %+v", b)
	}

	if _, err := uc.Execute(ctx, ap.ID, "done"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
	if _, err := uc.Execute(ctx, 77, "confirmed"); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")
	uc := NewDeleteAppointment(f.repo, f.dispatcher)

	if err := uc.Execute(ctx, ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Execute(ctx, ap.ID); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestListAppointmentsFiltersAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, f.john.ID, f.haircut.ID, "9:00 AM")
	f.book(t, f.john.ID, f.haircut.ID, "10:00 AM")
	third := f.book(t, f.mike.ID, f.beard.ID, "1:00 PM")
	if _, err := NewSetAppointmentStatus(f.repo, f.dispatcher).Execute(ctx, third.ID, "cancelled"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	uc := NewListAppointments(f.repo)

	all, err := uc.Execute(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Time != "1:00 PM" || all[2].Time != "9:00 AM" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	johns, _ := uc.Execute(ctx, ListFilter{BarberID: f.john.ID})
	if len(johns) != 2 || johns[0].BarberName != "John Master" {
		t.Fatalf("barber filter: %+v", johns)
	}

	cancelled, _ := uc.Execute(ctx, ListFilter{Status: "cancelled"})
	if len(cancelled) != 1 || cancelled[0].ServiceName != "Beard Trim" {
		t.Fatalf("status filter: %+v", cancelled)
	}

	none, _ := uc.Execute(ctx, ListFilter{Date: "2030-01-16"})
	if len(none) != 0 {
		t.Fatalf("date filter: %+v", none)
	}

	if _, err := uc.Execute(ctx, ListFilter{Status: "later"}); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}

	v, err := NewGetAppointment(f.repo).Execute(ctx, third.ID)
	if err != nil || v.CustomerName != "John Smith" {
		t.Fatalf("get: %+v %v", v, err)
	}
}

func TestAvailabilitySkipsBookedAndFullSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settings, _ := f.repo.GetSettings(ctx)
	settings.OpeningTime = "09:00"
	settings.ClosingTime = "11:00"
	settings.MaxAppointments = 1
	if err := f.repo.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("settings: %v", err)
	}

	f.book(t, f.john.ID, f.haircut.ID, "09:30")
	f.book(t, f.mike.ID, f.haircut.ID, "10:00")

	slots, err := NewGetAvailability(f.repo).Execute(ctx, domain.AvailabilityInput{
		BarberID:  f.john.ID,
		ServiceID: f.haircut.ID,
		Date:      testDate,
	})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	// 09:30 is John's, 10:00 is at shop capacity
	want := []string{"09:00", "10:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %+v", want, slots)
	}
	for i, s := range slots {
		if s.Start != want[i] {
			t.Fatalf("slot %d = %s, want %s", i, s.Start, want[i])
		}
	}
	if slots[0].Label != "9:00 AM" || slots[0].End != "09:30" {
		t.Fatalf("unexpected slot %+v", slots[0])
	}

	if _, err := NewGetAvailability(f.repo).Execute(ctx, domain.AvailabilityInput{BarberID: 99, Date: testDate}); !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestQueuePosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, f.john.ID, f.haircut.ID, "09:00")
	second := f.book(t, f.john.ID, f.haircut.ID, "09:30")
	third := f.book(t, f.john.ID, f.haircut.ID, "10:00")
	fourth := f.book(t, f.john.ID, f.beard.ID, "10:30")
	other := f.book(t, f.mike.ID, f.beard.ID, "09:00")

	uc := NewGetQueuePosition(f.repo)

	tests := []struct {
		id       uint
		position int
		wait     int
		message  string
	}{
		{first.ID, 1, 0, "It's your turn! Please proceed to the barber station."},
		{second.ID, 2, 30, "You're next! Only 1 person ahead of you."},
		{third.ID, 3, 60, "Almost your turn! Only 2 people ahead of you. Please be ready."},
		{fourth.ID, 4, 90, "3 people ahead of you."},
		{other.ID, 1, 0, "It's your turn! Please proceed to the barber station."},
	}
	for _, tt := range tests {
		got, err := uc.Execute(ctx, tt.id)
		if err != nil {
			t.Fatalf("queue %d: %v", tt.id, err)
		}
		if got.Position != tt.position || got.EstimatedWait != tt.wait || got.Message != tt.message {
			t.Errorf("appointment %d: %+v", tt.id, got)
		}
	}

	if _, err := NewSetAppointmentStatus(f.repo, f.dispatcher).Execute(ctx, first.ID, "completed"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, _ := uc.Execute(ctx, second.ID)
	if got.Position != 1 {
		t.Fatalf("expected second to move up, got %+v", got)
	}
	done, _ := uc.Execute(ctx, first.ID)
	if done.Position != 0 || done.Message != "This appointment is completed." {
		t.Fatalf("completed appointment: %+v", done)
	}
}

func TestCreatedAtIsStamped(t *testing.T) {
	f := newFixture(t)
	before := time.Now().Add(-time.Second)
	ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")
	if ap.CreatedAt.Before(before) {
		t.Fatalf("created_at not stamped: %v", ap.CreatedAt)
	}
}

func TestPublicBookingRejectsInactiveCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, _, err := f.repo.UpdateBarber(ctx, f.mike.ID, func(b *models.Barber) { b.Status = "inactive" }); err != nil {
		t.Fatalf("deactivate barber: %v", err)
	}
	if _, _, err := f.repo.UpdateService(ctx, f.beard.ID, func(s *models.Service) { s.Status = "inactive" }); err != nil {
		t.Fatalf("deactivate service: %v", err)
	}

	uc := NewCreateAppointment(f.repo, f.dispatcher)
	public := CreateAppointmentInput{
		CustomerName:  "Jane Doe",
		CustomerPhone: "+251922000000",
		BarberID:      f.john.ID,
		ServiceID:     f.haircut.ID,
		Date:          testDate,
		Time:          "10:00",
		ActiveOnly:    true,
	}

	inactiveBarber := public
	inactiveBarber.BarberID = f.mike.ID
	if _, err := uc.Execute(ctx, inactiveBarber); !httperr.IsBusiness(err, "barber_unavailable") {
		t.Fatalf("expected barber_unavailable, got %v", err)
	}

	inactiveService := public
	inactiveService.ServiceID = f.beard.ID
	if _, err := uc.Execute(ctx, inactiveService); !httperr.IsBusiness(err, "service_unavailable") {
		t.Fatalf("expected service_unavailable, got %v", err)
	}

	if _, err := uc.Execute(ctx, public); err != nil {
		t.Fatalf("active booking: %v", err)
	}

	// the admin path may still book withdrawn entries
	admin := inactiveBarber
	admin.ActiveOnly = false
	if _, err := uc.Execute(ctx, admin); err != nil {
		t.Fatalf("admin booking: %v", err)
	}
}

func TestConcurrentStatusCompletionCreditsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewSetAppointmentStatus(f.repo, f.dispatcher)

	const rounds, workers = 10, 8
	for i := 0; i < rounds; i++ {
		ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := uc.Execute(ctx, ap.ID, "completed"); err != nil {
					t.Errorf("complete: %v", err)
				}
			}()
		}
		wg.Wait()
	}

	c, _, _ := f.repo.GetCustomer(ctx, f.customer.ID)
	if c.Appointments != 9+rounds || c.TotalSpent != rounds*250 {
		t.Fatalf("customer credited %d times for %d completions", c.Appointments-9, rounds)
	}
	b, _, _ := f.repo.GetBarber(ctx, f.john.ID)
	if b.Appointments != rounds || b.Earnings != rounds*250 {
		t.Fatalf("barber credited %d times for %d completions", b.Appointments, rounds)
	}
}

func TestConcurrentUpdateAndStatusKeepBothChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")

	notes := "fade on the sides"
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := NewUpdateAppointment(f.repo, f.dispatcher).Execute(ctx, UpdateAppointmentInput{ID: ap.ID, Notes: &notes}); err != nil {
			t.Errorf("update: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := NewSetAppointmentStatus(f.repo, f.dispatcher).Execute(ctx, ap.ID, "confirmed"); err != nil {
			t.Errorf("status: %v", err)
		}
	}()
	wg.Wait()

	got, _, _ := f.repo.GetAppointment(ctx, ap.ID)
	if got.Notes != notes || got.Status != "confirmed" {
		t.Fatalf("lost a concurrent change: %+v", got)
	}
}

func TestStatusAndUpdateUseRepositoryClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ap := f.book(t, f.john.ID, f.haircut.ID, "09:00")

	completedAt := time.Date(2030, 1, 15, 9, 40, 0, 0, time.UTC)
	f.pin(completedAt)
	done, err := NewSetAppointmentStatus(f.repo, f.dispatcher).Execute(ctx, ap.ID, "completed")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(completedAt) || !done.UpdatedAt.Equal(completedAt) {
		t.Fatalf("completion not stamped with the repository clock: %+v", done)
	}

	updatedAt := completedAt.Add(time.Hour)
	f.pin(updatedAt)
	notes := "tipped"
	updated, err := NewUpdateAppointment(f.repo, f.dispatcher).Execute(ctx, UpdateAppointmentInput{ID: ap.ID, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.UpdatedAt.Equal(updatedAt) || !updated.CompletedAt.Equal(completedAt) {
		t.Fatalf("update clock: %+v", updated)
	}
}
