package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/export"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/usecase/download"
	"github.com/BruksfildServices01/quickcut/internal/usecase/report"
)

type ReportHandler struct {
	reports  *report.Generator
	exporter *download.Exporter
}

func NewReportHandler(repo *repository.ShopRepository) *ReportHandler {
	return &ReportHandler{
		reports:  report.New(repo),
		exporter: download.New(repo),
	}
}

func (h *ReportHandler) Report(c *gin.Context) {
	rep, err := h.reports.Execute(c.Request.Context(), c.Param("type"), c.Query("period"))
	if err != nil {
		writeError(c, err, "report_failed")
		return
	}

	httpresp.OK(c, rep)
}

// Export streams a collection or a report's rows as CSV or XLSX.
func (h *ReportHandler) Export(c *gin.Context) {
	file, err := h.exporter.Execute(c.Request.Context(), download.Request{
		Target: c.Param("target"),
		Format: c.DefaultQuery("format", export.FormatCSV),
		Period: c.Query("period"),
	})
	switch {
	case errors.Is(err, download.ErrUnknownTarget):
		httperr.NotFound(c, "unknown_export_target", "Unknown export target.")
		return
	case errors.Is(err, export.ErrUnknownFormat):
		httperr.BadRequest(c, "invalid_format", "Format must be csv or xlsx.")
		return
	case err != nil:
		writeError(c, err, "export_failed")
		return
	}

	httpresp.Attachment(c, file.Name, file.ContentType, file.Body)
}
