package models

import (
	"strings"
	"time"
)

// Customer é criado pelo admin ou automaticamente pelo fluxo público (telefone).
type Customer struct {
	ID uint `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	Appointments int     `json:"appointments"`
	TotalSpent   float64 `json:"total_spent"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Customer) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
