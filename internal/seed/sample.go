// Package seed loads the demo shop used on first start and by the CLI.
package seed

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/domain/customer"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

type Store interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	Import(ctx context.Context, snap models.Snapshot) error
}

// Sample returns the demo data with every appointment dated today.
func Sample(today string, now time.Time) models.Snapshot {
	barbers := []models.Barber{
		{ID: 1, FirstName: "John", LastName: "Master", Email: "john@quickcut.com", Phone: "0911111111",
			Specialty: "Haircut Specialist", Rate: 300, Status: "active", Appointments: 24, Earnings: 6000, Rating: 4.9},
		{ID: 2, FirstName: "Mike", LastName: "Style", Email: "mike@quickcut.com", Phone: "0922222222",
			Specialty: "Beard Specialist", Rate: 200, Status: "active", Appointments: 18, Earnings: 3600, Rating: 4.7},
	}

	services := []models.Service{
		{ID: 1, Name: "Classic Haircut", Description: "Professional men's haircut with styling",
			Duration: 30, Price: 250, Category: "haircut", Status: "active"},
		{ID: 2, Name: "Beard Trim", Description: "Precision beard shaping and trim",
			Duration: 20, Price: 150, Category: "beard", Status: "active"},
	}

	customers := []models.Customer{
		{ID: customer.FirstID, FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Phone: "0912345678",
			Address: "123 Main St, Addis Ababa", Appointments: 12, TotalSpent: 3000, Notes: "Regular customer"},
		{ID: customer.FirstID + 1, FirstName: "Mike", LastName: "Johnson", Email: "mike.j@email.com", Phone: "0923456789",
			Address: "456 Center Ave, Addis Ababa", Appointments: 8, TotalSpent: 1200, Notes: "Beard specialist preferred"},
	}

	appointments := []models.Appointment{
		{ID: 1, CustomerID: customers[0].ID, BarberID: 1, ServiceID: 1, Date: today, StartMinute: 10*60 + 30,
			Duration: 30, Amount: 250, Status: "scheduled", Notes: "Regular haircut"},
		{ID: 2, CustomerID: customers[1].ID, BarberID: 2, ServiceID: 2, Date: today, StartMinute: 11*60 + 15,
			Duration: 20, Amount: 150, Status: "confirmed", Notes: "Precision beard shaping"},
		{ID: 3, CustomerID: customers[1].ID, BarberID: 1, ServiceID: 1, Date: today, StartMinute: 12 * 60,
			Duration: 30, Amount: 250, Status: "in-progress", Notes: "Cut after the beard trim"},
	}

	for i := range barbers {
		barbers[i].CreatedAt, barbers[i].UpdatedAt = now, now
	}
	for i := range services {
		services[i].CreatedAt, services[i].UpdatedAt = now, now
	}
	for i := range customers {
		customers[i].Status = customer.DeriveStatus(customers[i].Appointments)
		customers[i].CreatedAt, customers[i].UpdatedAt = now, now
	}
	for i := range appointments {
		appointments[i].CreatedAt, appointments[i].UpdatedAt = now, now
	}

	return models.Snapshot{
		Appointments:  appointments,
		Barbers:       barbers,
		Services:      services,
		Customers:     customers,
		Notifications: []models.Notification{},
	}
}

// IfEmpty imports the sample data when the shop has no appointments yet.
func IfEmpty(ctx context.Context, store Store, today string, now time.Time) (bool, error) {
	existing, err := store.ListAppointments(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	if err := store.Import(ctx, Sample(today, now)); err != nil {
		return false, err
	}
	log.Printf("[seed] sample data loaded for %s", today)
	return true, nil
}
