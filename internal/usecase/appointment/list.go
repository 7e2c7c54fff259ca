package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/dto"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
)

type ListFilter struct {
	Date     string
	Status   string
	BarberID uint
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the filtered appointments newest first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	f ListFilter,
) ([]dto.AppointmentView, error) {

	if f.Status != "" {
		if _, err := domain.ParseStatus(f.Status); err != nil {
			return nil, err
		}
	}

	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := snap.Appointments[:0]
	for _, ap := range snap.Appointments {
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		if f.BarberID != 0 && ap.BarberID != f.BarberID {
			continue
		}
		out = append(out, ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		if out[i].StartMinute != out[j].StartMinute {
			return out[i].StartMinute > out[j].StartMinute
		}
		return out[i].ID > out[j].ID
	})

	return dto.NewDirectory(snap).Views(out), nil
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*dto.AppointmentView, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, ap := range snap.Appointments {
		if ap.ID == id {
			v := dto.NewDirectory(snap).View(ap)
			return &v, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}
