package search

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/quickcut/internal/dto"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

const (
	MinQueryLength = 2
	MaxResults     = 10
)

type Source interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

type Result struct {
	Kind     string `json:"kind"` // appointment, customer, barber
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Search struct {
	src Source
}

func New(src Source) *Search {
	return &Search{src: src}
}

// Execute matches appointments, then customers, then barbers, each in
// insertion order, and stops at MaxResults.
func (s *Search) Execute(ctx context.Context, query string) ([]Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLength {
		return []Result{}, nil
	}

	snap, err := s.src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	dir := dto.NewDirectory(snap)

	results := make([]Result, 0, MaxResults)
	add := func(r Result) bool {
		results = append(results, r)
		return len(results) < MaxResults
	}

	for _, ap := range snap.Appointments {
		v := dir.View(ap)
		if matches(q, v.CustomerName, v.CustomerPhone, v.ServiceName) {
			if !add(Result{Kind: "appointment", ID: ap.ID, Title: v.CustomerName, Subtitle: v.ServiceName + " - " + v.Date + " " + v.Time}) {
				return results, nil
			}
		}
	}

	for _, c := range snap.Customers {
		if matches(q, c.FirstName, c.LastName, c.Phone, c.Email) {
			if !add(Result{Kind: "customer", ID: c.ID, Title: c.FullName(), Subtitle: c.Phone}) {
				return results, nil
			}
		}
	}

	for _, b := range snap.Barbers {
		if matches(q, b.FirstName, b.LastName, b.Phone, b.Specialty) {
			if !add(Result{Kind: "barber", ID: b.ID, Title: b.FullName(), Subtitle: b.Specialty}) {
				return results, nil
			}
		}
	}

	return results, nil
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
