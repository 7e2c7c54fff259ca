package models

import "time"

type Barber struct {
	ID uint `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`

	Rate   float64 `json:"rate"`
	Status string  `json:"status"`

	Appointments int     `json:"appointments"`
	Earnings     float64 `json:"earnings"`
	Rating       float64 `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Barber) FullName() string {
	return joinName(b.FirstName, b.LastName)
}
