package dto

import (
	"time"

	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
)

// AppointmentView is an appointment joined with the names it references.
// Dangling references render as empty names.
type AppointmentView struct {
	ID uint `json:"id"`

	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`

	Date        string  `json:"date"`
	Time        string  `json:"time"`
	StartMinute int     `json:"start_minute"`
	Duration    int     `json:"duration"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

// Directory indexes the reference collections by id for the render join.
type Directory struct {
	customers map[uint]models.Customer
	barbers   map[uint]models.Barber
	services  map[uint]models.Service
}

func NewDirectory(snap models.Snapshot) Directory {
	d := Directory{
		customers: make(map[uint]models.Customer, len(snap.Customers)),
		barbers:   make(map[uint]models.Barber, len(snap.Barbers)),
		services:  make(map[uint]models.Service, len(snap.Services)),
	}
	for _, c := range snap.Customers {
		d.customers[c.ID] = c
	}
	for _, b := range snap.Barbers {
		d.barbers[b.ID] = b
	}
	for _, s := range snap.Services {
		d.services[s.ID] = s
	}
	return d
}

func (d Directory) Customer(id uint) (models.Customer, bool) {
	c, ok := d.customers[id]
	return c, ok
}

func (d Directory) Barber(id uint) (models.Barber, bool) {
	b, ok := d.barbers[id]
	return b, ok
}

func (d Directory) Service(id uint) (models.Service, bool) {
	s, ok := d.services[id]
	return s, ok
}

func (d Directory) View(ap models.Appointment) AppointmentView {
	v := AppointmentView{
		ID:          ap.ID,
		CustomerID:  ap.CustomerID,
		BarberID:    ap.BarberID,
		ServiceID:   ap.ServiceID,
		Date:        ap.Date,
		Time:        timeofday.Format12h(ap.StartMinute),
		StartMinute: ap.StartMinute,
		Duration:    ap.Duration,
		Amount:      ap.Amount,
		Status:      ap.Status,
		Notes:       ap.Notes,
		CreatedAt:   ap.CreatedAt,
	}
	if c, ok := d.customers[ap.CustomerID]; ok {
		v.CustomerName = c.FullName()
		v.CustomerPhone = c.Phone
	}
	if b, ok := d.barbers[ap.BarberID]; ok {
		v.BarberName = b.FullName()
	}
	if s, ok := d.services[ap.ServiceID]; ok {
		v.ServiceName = s.Name
	}
	return v
}

func (d Directory) Views(aps []models.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, d.View(ap))
	}
	return out
}
