package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/export"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
)

type businessMapping struct {
	status  int
	message string
}

// businessErrors maps use-case error codes to HTTP answers. Unknown
// references in a request body are 422; the path entity itself is 404.
var businessErrors = map[string]businessMapping{
	"invalid_date":          {http.StatusBadRequest, "Date must be YYYY-MM-DD."},
	"invalid_time":          {http.StatusBadRequest, "Time must be HH:MM or h:MM AM/PM."},
	"invalid_status":        {http.StatusBadRequest, "Unknown appointment status."},
	"customer_required":     {http.StatusBadRequest, "Customer id or name and phone are required."},
	"appointment_not_found": {http.StatusNotFound, "Appointment not found."},
	"service_not_found":     {http.StatusUnprocessableEntity, "Service not found."},
	"barber_not_found":      {http.StatusUnprocessableEntity, "Barber not found."},
	"customer_not_found":    {http.StatusUnprocessableEntity, "Customer not found."},
	"service_unavailable":   {http.StatusUnprocessableEntity, "Service is not available for booking."},
	"barber_unavailable":    {http.StatusUnprocessableEntity, "Barber is not available for booking."},
	"invalid_report_type":   {http.StatusBadRequest, "Report type must be revenue, appointments, services or barbers."},
	"invalid_period":        {http.StatusBadRequest, "Period must be week, month, quarter or year."},
	"wrong_password":        {http.StatusBadRequest, "Current password is incorrect."},
	"password_too_short":    {http.StatusBadRequest, "New password must be at least 6 characters."},
	"password_mismatch":     {http.StatusBadRequest, "New passwords do not match."},
	"password_unchanged":    {http.StatusBadRequest, "New password must be different from the current one."},
}

// writeError answers with the mapped business error, or a 500 carrying
// fallbackCode for anything else.
func writeError(c *gin.Context, err error, fallbackCode string) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		if m, ok := businessErrors[be.Code]; ok {
			httperr.Write(c, m.status, be.Code, m.message)
			return
		}
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}

	if errors.Is(err, export.ErrNoData) {
		httperr.Unprocessable(c, "no_data", "Nothing to export.")
		return
	}

	log.Printf("[http] %s %s: %v", c.Request.Method, c.FullPath(), err)
	httperr.Internal(c, fallbackCode, "Unexpected error.")
}

// pathID parses :id, answering 400 when it is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional numeric query parameter; empty means zero.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return false
	}
	return true
}
