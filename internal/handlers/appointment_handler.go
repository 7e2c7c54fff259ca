package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/usecase/appointment"
	"github.com/BruksfildServices01/quickcut/internal/usecase/dashboard"
	"github.com/BruksfildServices01/quickcut/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create    *appointment.CreateAppointment
	update    *appointment.UpdateAppointment
	setStatus *appointment.SetAppointmentStatus
	remove    *appointment.DeleteAppointment
	list      *appointment.ListAppointments
	get       *appointment.GetAppointment
	dashboard *dashboard.Dashboard
}

func NewAppointmentHandler(repo *repository.ShopRepository, dispatcher *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{
		create:    appointment.NewCreateAppointment(repo, dispatcher),
		update:    appointment.NewUpdateAppointment(repo, dispatcher),
		setStatus: appointment.NewSetAppointmentStatus(repo, dispatcher),
		remove:    appointment.NewDeleteAppointment(repo, dispatcher),
		list:      appointment.NewListAppointments(repo),
		get:       appointment.NewGetAppointment(repo),
		dashboard: dashboard.New(repo),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM or h:MM AM/PM
	Duration  int    `json:"duration" binding:"min=0"`
	Notes     string `json:"notes"`
}

func (r CreateAppointmentRequest) input() appointment.CreateAppointmentInput {
	return appointment.CreateAppointmentInput{
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		BarberID:      r.BarberID,
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		Time:          r.Time,
		Duration:      r.Duration,
		Notes:         r.Notes,
	}
}

type UpdateAppointmentRequest struct {
	CustomerID *uint   `json:"customer_id"`
	BarberID   *uint   `json:"barber_id"`
	ServiceID  *uint   `json:"service_id"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	Duration   *int    `json:"duration" binding:"omitempty,min=0"`
	Notes      *string `json:"notes"`
	Status     *string `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID, ok := queryID(c, "barber_id")
	if !ok {
		return
	}

	views, err := h.list.Execute(c.Request.Context(), appointment.ListFilter{
		Date:     c.Query("date"),
		Status:   c.Query("status"),
		BarberID: barberID,
	})
	if err != nil {
		writeError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Today(c *gin.Context) {
	views, err := h.dashboard.Today(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_get_appointment")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// CREATE / UPDATE / STATUS / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.CustomerEmail != "" && !validators.IsEmail(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), appointment.UpdateAppointmentInput{
		ID:         id,
		CustomerID: req.CustomerID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   req.Duration,
		Notes:      req.Notes,
		Status:     req.Status,
	})
	if err != nil {
		writeError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err, "failed_to_update_status")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_appointment")
		return
	}

	httpresp.NoContent(c)
}
