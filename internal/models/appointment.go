package models

import "time"

// Appointment references its customer, barber and service by id. Names are
// resolved at render time.
type Appointment struct {
	ID uint `json:"id"`

	CustomerID uint `json:"customer_id"`
	BarberID   uint `json:"barber_id"`
	ServiceID  uint `json:"service_id"`

	Date        string `json:"date"`         // YYYY-MM-DD
	StartMinute int    `json:"start_minute"` // minutes since midnight
	Duration    int    `json:"duration"`

	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Notes  string  `json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Appointment) EndMinute() int {
	return a.StartMinute + a.Duration
}
