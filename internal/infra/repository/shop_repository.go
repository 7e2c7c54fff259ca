package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/kv"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

// Collection keys, stored under Options.Prefix.
const (
	KeyAppointments         = "appointments"
	KeyBarbers              = "barbers"
	KeyServices             = "services"
	KeyCustomers            = "customers"
	KeyNotifications        = "notifications"
	KeySettings             = "settings"
	KeyNotificationSettings = "notification-settings"
	KeySessions             = "sessions"
	KeyCredentials          = "credentials"
	KeySequences            = "sequences"
)

const defaultSeed uint = 1

type Options struct {
	Prefix   string
	Settings models.ShopSettings
	Now      func() time.Time
}

// DefaultSettings mirrors the values a fresh shop starts with. An empty tz
// falls back to the default shop timezone.
func DefaultSettings(tz string) models.ShopSettings {
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	return models.ShopSettings{
		ShopName:        "QuickCut Barbershop",
		ShopPhone:       "+251 911 234 567",
		ShopAddress:     "Bole Road, Addis Ababa",
		ShopDescription: "Premium barbershop services with modern queue management.",
		OpeningTime:     "09:00",
		ClosingTime:     "20:00",
		SlotDuration:    30,
		MaxAppointments: 3,
		Timezone:        tz,
	}
}

// ShopRepository owns every in-memory collection. It is the only component
// that reads or writes the key/value store; each mutation rewrites the
// collections before returning.
type ShopRepository struct {
	store  kv.Store
	prefix string
	now    func() time.Time

	mu sync.Mutex

	appointments  []models.Appointment
	barbers       []models.Barber
	services      []models.Service
	customers     []models.Customer
	notifications []models.Notification
	sequences     map[string]uint

	settings             models.ShopSettings
	notificationSettings models.NotificationSettings
	credentials          *models.Credentials
	sessions             []models.Session
}

var _ domain.Repository = (*ShopRepository)(nil)

func New(store kv.Store, opts Options) *ShopRepository {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Settings.OpeningTime == "" {
		opts.Settings = DefaultSettings(opts.Settings.Timezone)
	}

	return &ShopRepository{
		store:                store,
		prefix:               opts.Prefix,
		now:                  opts.Now,
		sequences:            map[string]uint{},
		settings:             opts.Settings,
		notificationSettings: models.NotificationSettings{Email: true, SMS: true, Reminders: true},
	}
}

// ======================================================
// LOAD / SAVE
// ======================================================

// Load hydrates every collection. Absent or unreadable blobs leave the
// collection empty (settings keep their defaults); only backend failures
// are returned.
func (r *ShopRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := errors.Join(
		loadInto(ctx, r, KeyAppointments, &r.appointments, true),
		loadInto(ctx, r, KeyBarbers, &r.barbers, true),
		loadInto(ctx, r, KeyServices, &r.services, true),
		loadInto(ctx, r, KeyCustomers, &r.customers, true),
		loadInto(ctx, r, KeyNotifications, &r.notifications, true),
		loadInto(ctx, r, KeySequences, &r.sequences, true),
		loadInto(ctx, r, KeySettings, &r.settings, false),
		loadInto(ctx, r, KeyNotificationSettings, &r.notificationSettings, false),
		loadInto(ctx, r, KeyCredentials, &r.credentials, true),
		loadInto(ctx, r, KeySessions, &r.sessions, true),
	)
	if err != nil {
		return err
	}

	if r.sequences == nil {
		r.sequences = map[string]uint{}
	}
	return nil
}

func loadInto[T any](ctx context.Context, r *ShopRepository, key string, dst *T, resetOnError bool) error {
	raw, ok, err := r.store.Get(ctx, r.prefix+key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil
	}

	// value-typed settings decode over their defaults so missing fields keep them
	var v T
	if !resetOnError {
		v = *dst
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("repository: discarding unreadable %s blob: %v", key, err)
		if resetOnError {
			var zero T
			*dst = zero
		}
		return nil
	}
	*dst = v
	return nil
}

// SaveAll rewrites every entity collection. There is no multi-key
// atomicity: a failure leaves earlier keys already written.
func (r *ShopRepository) SaveAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveAll(ctx)
}

func (r *ShopRepository) saveAll(ctx context.Context) error {
	blobs := []struct {
		key string
		val any
	}{
		{KeyAppointments, nonNil(r.appointments)},
		{KeyBarbers, nonNil(r.barbers)},
		{KeyServices, nonNil(r.services)},
		{KeyCustomers, nonNil(r.customers)},
		{KeyNotifications, nonNil(r.notifications)},
		{KeySequences, r.sequences},
	}

	for _, b := range blobs {
		if err := r.put(ctx, b.key, b.val); err != nil {
			return err
		}
	}
	return nil
}

func (r *ShopRepository) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Put(ctx, r.prefix+key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// ======================================================
// SNAPSHOT / IMPORT
// ======================================================

func (r *ShopRepository) Snapshot(_ context.Context) (models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return models.Snapshot{
		Appointments:  clone(r.appointments),
		Barbers:       clone(r.barbers),
		Services:      clone(r.services),
		Customers:     clone(r.customers),
		Notifications: clone(r.notifications),
	}, nil
}

// Import replaces every entity collection with snap and persists it.
// Records keep their identifiers; sequences restart from the imported maxima.
func (r *ShopRepository) Import(ctx context.Context, snap models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = clone(snap.Appointments)
	r.barbers = clone(snap.Barbers)
	r.services = clone(snap.Services)
	r.customers = clone(snap.Customers)
	r.notifications = clone(snap.Notifications)

	r.sequences = map[string]uint{
		KeyAppointments:  maxID(r.appointments, func(a models.Appointment) uint { return a.ID }),
		KeyBarbers:       maxID(r.barbers, func(b models.Barber) uint { return b.ID }),
		KeyServices:      maxID(r.services, func(s models.Service) uint { return s.ID }),
		KeyCustomers:     maxID(r.customers, func(c models.Customer) uint { return c.ID }),
		KeyNotifications: maxID(r.notifications, func(n models.Notification) uint { return n.ID }),
	}

	return r.saveAll(ctx)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// ======================================================
// IDENTIFIERS
// ======================================================

// allocateID returns seed for an empty collection, otherwise one past the
// highest identifier ever issued, so deleted ids are not handed out again.
func allocateID[T any](r *ShopRepository, collection string, items []T, id func(T) uint, seed uint) uint {
	var next uint
	if len(items) == 0 {
		next = seed
	} else {
		next = max(r.sequences[collection], maxID(items, id)) + 1
	}
	r.sequences[collection] = next
	return next
}

func maxID[T any](items []T, id func(T) uint) uint {
	var m uint
	for _, it := range items {
		if v := id(it); v > m {
			m = v
		}
	}
	return m
}

func indexOf[T any](items []T, id func(T) uint, want uint) int {
	for i, it := range items {
		if id(it) == want {
			return i
		}
	}
	return -1
}
