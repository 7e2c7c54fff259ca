package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the open slots of a barber's day. It is advisory only:
// booking does not re-check it.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := timezone.ParseDate(settings.Timezone, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, ok, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, err
	} else if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	step := settings.SlotDuration
	if in.ServiceID != 0 {
		service, ok, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		step = service.Duration
	}
	if step <= 0 {
		step = 30
	}

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	var barberDay, shopDay []models.Appointment
	for _, ap := range appointments {
		if ap.Date != in.Date || !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		shopDay = append(shopDay, ap)
		if ap.BarberID == in.BarberID {
			barberDay = append(barberDay, ap)
		}
	}

	// today: nothing before the current minute
	earliest := -1
	now := timezone.NowIn(settings.Timezone)
	if in.Date == now.Format(timezone.DateLayout) {
		earliest = timeofday.Of(now)
	}

	capacity := settings.MaxAppointments
	dayStart, dayEnd := domain.ShopHours(settings)

	slots := []domain.TimeSlot{}
	for cur := dayStart; cur+step <= dayEnd; cur += step {
		slotStart, slotEnd := cur, cur+step

		if slotStart < earliest {
			continue
		}

		conflict := false
		for _, ap := range barberDay {
			if domain.Overlaps(slotStart, slotEnd, ap.StartMinute, ap.EndMinute()) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		if capacity > 0 {
			starting := 0
			for _, ap := range shopDay {
				if ap.StartMinute >= slotStart && ap.StartMinute < slotEnd {
					starting++
				}
			}
			if starting >= capacity {
				continue
			}
		}

		slots = append(slots, domain.TimeSlot{
			Start: timeofday.Format24h(slotStart),
			End:   timeofday.Format24h(slotEnd),
			Label: timeofday.Format12h(slotStart),
		})
	}

	return slots, nil
}
