package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	domain "github.com/BruksfildServices01/quickcut/internal/domain/appointment"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
	"github.com/BruksfildServices01/quickcut/internal/usecase/appointment"
	"github.com/BruksfildServices01/quickcut/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the customer booking page. It never exposes
// customer records or revenue.
type PublicHandler struct {
	repo         *repository.ShopRepository
	create       *appointment.CreateAppointment
	availability *appointment.GetAvailability
	queue        *appointment.GetQueuePosition
}

func NewPublicHandler(repo *repository.ShopRepository, dispatcher *audit.Dispatcher) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		create:       appointment.NewCreateAppointment(repo, dispatcher),
		availability: appointment.NewGetAvailability(repo),
		queue:        appointment.NewGetQueuePosition(repo),
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	BarberID      uint   `json:"barber_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Notes         string `json:"notes"`
}

type publicBarber struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
}

type publicBooking struct {
	ID      uint   `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) Services(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_services")
		return
	}

	active := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Status == repository.ServiceActive {
			active = append(active, s)
		}
	}

	httpresp.List(c, active)
}

func (h *PublicHandler) Barbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_barbers")
		return
	}

	out := make([]publicBarber, 0, len(barbers))
	for _, b := range barbers {
		if b.Status != repository.BarberActive {
			continue
		}
		out = append(out, publicBarber{ID: b.ID, Name: b.FullName(), Specialty: b.Specialty, Rating: b.Rating})
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) Shop(c *gin.Context) {
	s, err := h.repo.GetSettings(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_get_settings")
		return
	}

	httpresp.OK(c, gin.H{
		"name":         s.ShopName,
		"phone":        s.ShopPhone,
		"address":      s.ShopAddress,
		"description":  s.ShopDescription,
		"opening_time": s.OpeningTime,
		"closing_time": s.ClosingTime,
		"timezone":     s.Timezone,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "date and barber_id are required.")
		return
	}
	barberID, ok := queryID(c, "barber_id")
	if !ok {
		return
	}
	if barberID == 0 {
		httperr.BadRequest(c, "missing_params", "date and barber_id are required.")
		return
	}
	serviceID, ok := queryID(c, "service_id")
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeError(c, err, "availability_failed")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.CustomerEmail != "" && !validators.IsEmail(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		ActiveOnly:    true,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, publicBooking{
		ID:      ap.ID,
		Date:    ap.Date,
		Time:    timeofday.Format12h(ap.StartMinute),
		Status:  ap.Status,
		Message: "Booking received. Keep your booking number to check your place in the queue.",
	})
}

func (h *PublicHandler) Queue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	status, err := h.queue.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "queue_lookup_failed")
		return
	}

	httpresp.OK(c, status)
}
