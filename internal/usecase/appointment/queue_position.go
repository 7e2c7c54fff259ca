package appointment

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
)

type QueueStatus struct {
	AppointmentID uint   `json:"appointment_id"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Position      int    `json:"position"`
	Ahead         int    `json:"ahead"`
	EstimatedWait int    `json:"estimated_wait_minutes"`
	Message       string `json:"message"`
}

type GetQueuePosition struct {
	repo domain.Repository
}

func NewGetQueuePosition(repo domain.Repository) *GetQueuePosition {
	return &GetQueuePosition{repo: repo}
}

// Execute places the appointment in its barber's line for the day: every
// active appointment of the same barber and date, ordered by start minute.
func (uc *GetQueuePosition) Execute(ctx context.Context, appointmentID uint) (*QueueStatus, error) {
	ap, ok, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	out := &QueueStatus{
		AppointmentID: ap.ID,
		Status:        ap.Status,
		Date:          ap.Date,
		Time:          timeofday.Format12h(ap.StartMinute),
	}

	status := domain.Status(ap.Status)
	if !domain.IsActive(status) {
		out.Message = fmt.Sprintf("This appointment is %s.", ap.Status)
		return out, nil
	}

	all, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	var line []models.Appointment
	for _, other := range all {
		if other.Date == ap.Date && other.BarberID == ap.BarberID && domain.IsActive(domain.Status(other.Status)) {
			line = append(line, other)
		}
	}
	sort.SliceStable(line, func(i, j int) bool {
		if line[i].StartMinute != line[j].StartMinute {
			return line[i].StartMinute < line[j].StartMinute
		}
		return line[i].ID < line[j].ID
	})

	for _, other := range line {
		if other.ID == ap.ID {
			break
		}
		out.Ahead++
		out.EstimatedWait += other.Duration
	}
	out.Position = out.Ahead + 1

	if status == domain.StatusInProgress {
		out.Message = "Your service is in progress."
		return out, nil
	}
	out.Message = QueueMessage(out.Ahead)
	return out, nil
}

// QueueMessage is the customer-facing line for the number of people ahead.
func QueueMessage(ahead int) string {
	switch ahead {
	case 0:
		return "It's your turn! Please proceed to the barber station."
	case 1:
		return "You're next! Only 1 person ahead of you."
	case 2:
		return "Almost your turn! Only 2 people ahead of you. Please be ready."
	default:
		return fmt.Sprintf("%d people ahead of you.", ahead)
	}
}
