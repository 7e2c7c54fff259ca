package models

// Snapshot is a point-in-time copy of every entity collection.
type Snapshot struct {
	Appointments  []Appointment  `json:"appointments"`
	Barbers       []Barber       `json:"barbers"`
	Services      []Service      `json:"services"`
	Customers     []Customer     `json:"customers"`
	Notifications []Notification `json:"notifications"`
}
