package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/validators"
)

type BarberHandler struct {
	repo  *repository.ShopRepository
	audit *audit.Dispatcher
}

func NewBarberHandler(repo *repository.ShopRepository, dispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{repo: repo, audit: dispatcher}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Specialty string  `json:"specialty"`
	Rate      float64 `json:"rate" binding:"min=0"`
	Status    string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateBarberRequest struct {
	FirstName *string  `json:"first_name" binding:"omitempty,min=1"`
	LastName  *string  `json:"last_name"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	Specialty *string  `json:"specialty"`
	Rate      *float64 `json:"rate" binding:"omitempty,min=0"`
	Rating    *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Status    *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))

	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_barbers")
		return
	}

	if status != "" {
		filtered := barbers[:0]
		for _, b := range barbers {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		barbers = filtered
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, found, err := h.repo.GetBarber(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_get_barber")
		return
	}
	if !found {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email != "" && !validators.IsEmail(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	b := models.Barber{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Specialty: strings.TrimSpace(req.Specialty),
		Rate:      req.Rate,
		Status:    req.Status,
	}
	if err := h.repo.CreateBarber(c.Request.Context(), &b); err != nil {
		writeError(c, err, "failed_to_create_barber")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: b.ID,
		Message:  fmt.Sprintf("New barber %s added", b.FullName()),
		Type:     models.NotificationSuccess,
	})

	httpresp.Created(c, b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email != nil && *req.Email != "" && !validators.IsEmail(*req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	b, found, err := h.repo.UpdateBarber(c.Request.Context(), id, func(b *models.Barber) {
		setString(&b.FirstName, req.FirstName)
		setString(&b.LastName, req.LastName)
		setString(&b.Email, req.Email)
		setString(&b.Phone, req.Phone)
		setString(&b.Specialty, req.Specialty)
		setString(&b.Status, req.Status)
		setValue(&b.Rate, req.Rate)
		setValue(&b.Rating, req.Rating)
	})
	if err != nil {
		writeError(c, err, "failed_to_update_barber")
		return
	}
	if !found {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: b.ID,
		Message:  fmt.Sprintf("Barber %s updated", b.FullName()),
		Type:     models.NotificationInfo,
	})

	httpresp.OK(c, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.repo.DeleteBarber(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_delete_barber")
		return
	}
	if !found {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: id,
		Message:  fmt.Sprintf("Barber #%d removed", id),
		Type:     models.NotificationWarning,
	})

	httpresp.NoContent(c)
}

// setString trims and applies an optional string field.
func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
