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
)

type ServiceHandler struct {
	repo  *repository.ShopRepository
	audit *audit.Dispatcher
}

func NewServiceHandler(repo *repository.ShopRepository, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{repo: repo, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))

	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_services")
		return
	}

	filtered := services[:0]
	for _, s := range services {
		if category != "" && strings.ToLower(s.Category) != category {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		filtered = append(filtered, s)
	}

	httpresp.List(c, filtered)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, found, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_get_service")
		return
	}
	if !found {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		Status:      req.Status,
	}
	if err := h.repo.CreateService(c.Request.Context(), &s); err != nil {
		writeError(c, err, "failed_to_create_service")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: s.ID,
		Message:  fmt.Sprintf("New service %s added", s.Name),
		Type:     models.NotificationSuccess,
	})

	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, found, err := h.repo.UpdateService(c.Request.Context(), id, func(s *models.Service) {
		setString(&s.Name, req.Name)
		setString(&s.Description, req.Description)
		setString(&s.Category, req.Category)
		setString(&s.Status, req.Status)
		setValue(&s.Duration, req.Duration)
		setValue(&s.Price, req.Price)
	})
	if err != nil {
		writeError(c, err, "failed_to_update_service")
		return
	}
	if !found {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: s.ID,
		Message:  fmt.Sprintf("Service %s updated", s.Name),
		Type:     models.NotificationInfo,
	})

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.repo.DeleteService(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_delete_service")
		return
	}
	if !found {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
		Message:  fmt.Sprintf("Service #%d removed", id),
		Type:     models.NotificationWarning,
	})

	httpresp.NoContent(c)
}
