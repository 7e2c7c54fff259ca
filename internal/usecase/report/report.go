package report

import (
	"context"
	"math"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

const (
	TypeRevenue      = "revenue"
	TypeAppointments = "appointments"
	TypeServices     = "services"
	TypeBarbers      = "barbers"

	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"

	DefaultPeriod = PeriodMonth
)

var (
	ErrUnknownType   = httperr.ErrBusiness("invalid_report_type")
	ErrUnknownPeriod = httperr.ErrBusiness("invalid_period")
)

type Source interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
	GetSettings(ctx context.Context) (models.ShopSettings, error)
}

type SummaryItem struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Report carries a typed row slice in Rows so exports can reflect over it.
type Report struct {
	Type    string        `json:"type"`
	Period  string        `json:"period"`
	From    string        `json:"from"`
	To      string        `json:"to"`
	Summary []SummaryItem `json:"summary"`
	Rows    any           `json:"rows"`
	Total   int           `json:"total"`
}

type RevenueRow struct {
	Date         string  `json:"date"`
	Appointments int     `json:"appointments"`
	Completed    int     `json:"completed"`
	Revenue      float64 `json:"revenue"`
}

type StatusRow struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ServiceRow struct {
	ServiceID uint    `json:"service_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Bookings  int     `json:"bookings"`
	Revenue   float64 `json:"revenue"`
}

type BarberRow struct {
	BarberID     uint    `json:"barber_id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Appointments int     `json:"appointments"`
	Earnings     float64 `json:"earnings"`
	Rating       float64 `json:"rating"`
}

type Generator struct {
	src Source
	now func(tz string) time.Time
}

func New(src Source) *Generator {
	return &Generator{src: src, now: timezone.NowIn}
}

// Window returns the inclusive date range for period ending at today.
func Window(period string, today time.Time) (from, to string, err error) {
	var start time.Time
	switch period {
	case PeriodWeek:
		start = today.AddDate(0, 0, -7)
	case PeriodMonth:
		start = today.AddDate(0, -1, 0)
	case PeriodQuarter:
		start = today.AddDate(0, -3, 0)
	case PeriodYear:
		start = today.AddDate(-1, 0, 0)
	default:
		return "", "", ErrUnknownPeriod
	}
	return start.Format(timezone.DateLayout), today.Format(timezone.DateLayout), nil
}

func (g *Generator) Execute(ctx context.Context, reportType, period string) (*Report, error) {
	if period == "" {
		period = DefaultPeriod
	}

	settings, err := g.src.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	from, to, err := Window(period, g.now(settings.Timezone))
	if err != nil {
		return nil, err
	}

	snap, err := g.src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var inPeriod []models.Appointment
	for _, ap := range snap.Appointments {
		if ap.Date >= from && ap.Date <= to {
			inPeriod = append(inPeriod, ap)
		}
	}

	rep := &Report{Type: reportType, Period: period, From: from, To: to}
	switch reportType {
	case TypeRevenue:
		revenue(rep, inPeriod)
	case TypeAppointments:
		appointments(rep, inPeriod)
	case TypeServices:
		services(rep, inPeriod, snap.Services)
	case TypeBarbers:
		barbers(rep, inPeriod, snap.Barbers)
	default:
		return nil, ErrUnknownType
	}
	return rep, nil
}

func revenue(rep *Report, aps []models.Appointment) {
	byDate := map[string]*RevenueRow{}
	var total float64
	completed := 0

	for _, ap := range aps {
		row, ok := byDate[ap.Date]
		if !ok {
			row = &RevenueRow{Date: ap.Date}
			byDate[ap.Date] = row
		}
		row.Appointments++
		row.Revenue += ap.Amount
		total += ap.Amount
		if ap.Status == string(domain.StatusCompleted) {
			row.Completed++
			completed++
		}
	}

	rows := make([]RevenueRow, 0, len(byDate))
	for _, r := range byDate {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	rep.Summary = []SummaryItem{
		{Label: "Total Revenue", Value: total},
		{Label: "Average per Appointment", Value: average(total, len(aps))},
		{Label: "Completed Appointments", Value: completed},
		{Label: "Total Appointments", Value: len(aps)},
	}
	rep.Rows, rep.Total = rows, len(rows)
}

func appointments(rep *Report, aps []models.Appointment) {
	counts := map[string]int{}
	for _, ap := range aps {
		counts[ap.Status]++
	}

	statuses := domain.Statuses()
	rows := make([]StatusRow, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, StatusRow{
			Status:  string(st),
			Count:   counts[string(st)],
			Percent: percent(counts[string(st)], len(aps)),
		})
	}

	rep.Summary = []SummaryItem{
		{Label: "Total Appointments", Value: len(aps)},
		{Label: "Completed", Value: counts[string(domain.StatusCompleted)]},
		{Label: "Cancelled", Value: counts[string(domain.StatusCancelled)]},
		{Label: "Completion Rate", Value: percent(counts[string(domain.StatusCompleted)], len(aps))},
	}
	rep.Rows, rep.Total = rows, len(rows)
}

func services(rep *Report, aps []models.Appointment, svcs []models.Service) {
	index := make(map[uint]int, len(svcs))
	rows := make([]ServiceRow, 0, len(svcs))
	for i, s := range svcs {
		index[s.ID] = i
		rows = append(rows, ServiceRow{ServiceID: s.ID, Name: s.Name, Category: s.Category, Price: s.Price})
	}

	minutes := 0
	for _, ap := range aps {
		minutes += ap.Duration
		if i, ok := index[ap.ServiceID]; ok {
			rows[i].Bookings++
			rows[i].Revenue += ap.Amount
		}
	}

	popular := ""
	best := 0
	for _, r := range rows {
		if r.Bookings > best {
			best, popular = r.Bookings, r.Name
		}
	}

	rep.Summary = []SummaryItem{
		{Label: "Total Services", Value: len(svcs)},
		{Label: "Most Popular Service", Value: popular},
		{Label: "Average Duration", Value: average(float64(minutes), len(aps))},
	}
	rep.Rows, rep.Total = rows, len(rows)
}

func barbers(rep *Report, aps []models.Appointment, bs []models.Barber) {
	index := make(map[uint]int, len(bs))
	rows := make([]BarberRow, 0, len(bs))
	var ratings float64
	for i, b := range bs {
		index[b.ID] = i
		ratings += b.Rating
		rows = append(rows, BarberRow{BarberID: b.ID, Name: b.FullName(), Status: b.Status, Rating: b.Rating})
	}

	for _, ap := range aps {
		if i, ok := index[ap.BarberID]; ok {
			rows[i].Appointments++
			rows[i].Earnings += ap.Amount
		}
	}

	top := ""
	best := 0
	for _, r := range rows {
		if r.Appointments > best {
			best, top = r.Appointments, r.Name
		}
	}

	rep.Summary = []SummaryItem{
		{Label: "Total Barbers", Value: len(bs)},
		{Label: "Top Barber", Value: top},
		{Label: "Average Rating", Value: round2(average(ratings, len(bs)))},
	}
	rep.Rows, rep.Total = rows, len(rows)
}

func average(total float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return round2(total / float64(n))
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part) / float64(whole) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
