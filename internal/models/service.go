package models

import "time"

// CatalogActive marks barbers and services offered for public booking.
const CatalogActive = "active"

type Service struct {
	ID uint `json:"id"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
