// Package download turns a collection or a report into a CSV/XLSX file.
package download

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/export"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
	"github.com/BruksfildServices01/quickcut/internal/usecase/appointment"
	"github.com/BruksfildServices01/quickcut/internal/usecase/report"
)

// ReportPrefix selects a report's rows, e.g. "report-revenue".
const ReportPrefix = "report-"

var ErrUnknownTarget = errors.New("unknown export target")

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type Request struct {
	Target string
	Format string
	Period string
}

type Exporter struct {
	repo    domain.Repository
	list    *appointment.ListAppointments
	reports *report.Generator
}

func New(repo domain.Repository) *Exporter {
	return &Exporter{
		repo:    repo,
		list:    appointment.NewListAppointments(repo),
		reports: report.New(repo),
	}
}

func (e *Exporter) Execute(ctx context.Context, req Request) (*File, error) {
	format := strings.ToLower(req.Format)
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		return nil, export.ErrUnknownFormat
	}

	records, name, err := e.records(ctx, strings.ToLower(req.Target), req.Period)
	if err != nil {
		return nil, err
	}

	table, err := export.FromRecords(name, records)
	if err != nil {
		return nil, err
	}
	body, err := export.Render(table, format)
	if err != nil {
		return nil, err
	}

	settings, err := e.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        export.Filename(name, timezone.Today(settings.Timezone), format),
		ContentType: export.ContentType(format),
		Body:        body,
	}, nil
}

func (e *Exporter) records(ctx context.Context, target, period string) (any, string, error) {
	if typ, ok := strings.CutPrefix(target, ReportPrefix); ok {
		rep, err := e.reports.Execute(ctx, typ, period)
		if errors.Is(err, report.ErrUnknownType) {
			return nil, "", ErrUnknownTarget
		}
		if err != nil {
			return nil, "", err
		}
		return rep.Rows, typ + "-report", nil
	}

	if target == "appointments" {
		views, err := e.list.Execute(ctx, appointment.ListFilter{})
		return views, target, err
	}

	snap, err := e.repo.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	switch target {
	case "barbers":
		return snap.Barbers, target, nil
	case "services":
		return snap.Services, target, nil
	case "customers":
		return snap.Customers, target, nil
	}
	return nil, "", ErrUnknownTarget
}
