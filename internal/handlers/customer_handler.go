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

type CustomerHandler struct {
	repo  *repository.ShopRepository
	audit *audit.Dispatcher
}

func NewCustomerHandler(repo *repository.ShopRepository, dispatcher *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{repo: repo, audit: dispatcher}
}

// Status is never accepted from the client; it follows the appointment count.
type CreateCustomerRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Appointments int     `json:"appointments" binding:"min=0"`
	TotalSpent   float64 `json:"total_spent" binding:"min=0"`
	Notes        string  `json:"notes"`
}

type UpdateCustomerRequest struct {
	FirstName    *string  `json:"first_name" binding:"omitempty,min=1"`
	LastName     *string  `json:"last_name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	Appointments *int     `json:"appointments" binding:"omitempty,min=0"`
	TotalSpent   *float64 `json:"total_spent" binding:"omitempty,min=0"`
	Notes        *string  `json:"notes"`
}

// ======================================================
// LIST CUSTOMERS
// ======================================================
func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))

	customers, err := h.repo.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_customers")
		return
	}

	filtered := customers[:0]
	for _, cu := range customers {
		if status != "" && cu.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(cu.FullName()), query) &&
			!strings.Contains(cu.Phone, query) &&
			!strings.Contains(strings.ToLower(cu.Email), query) {
			continue
		}
		filtered = append(filtered, cu)
	}

	httpresp.List(c, filtered)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cu, found, err := h.repo.GetCustomer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_get_customer")
		return
	}
	if !found {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	httpresp.OK(c, cu)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email != "" && !validators.IsEmail(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	cu := models.Customer{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Appointments: req.Appointments,
		TotalSpent:   req.TotalSpent,
		Notes:        strings.TrimSpace(req.Notes),
	}
	if err := h.repo.CreateCustomer(c.Request.Context(), &cu); err != nil {
		writeError(c, err, "failed_to_create_customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: cu.ID,
		Message:  fmt.Sprintf("New customer %s registered", cu.FullName()),
		Type:     models.NotificationSuccess,
	})

	httpresp.Created(c, cu)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email != nil && *req.Email != "" && !validators.IsEmail(*req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	cu, found, err := h.repo.UpdateCustomer(c.Request.Context(), id, func(cu *models.Customer) {
		setString(&cu.FirstName, req.FirstName)
		setString(&cu.LastName, req.LastName)
		setString(&cu.Email, req.Email)
		setString(&cu.Phone, req.Phone)
		setString(&cu.Address, req.Address)
		setString(&cu.Notes, req.Notes)
		setValue(&cu.Appointments, req.Appointments)
		setValue(&cu.TotalSpent, req.TotalSpent)
	})
	if err != nil {
		writeError(c, err, "failed_to_update_customer")
		return
	}
	if !found {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: cu.ID,
		Message:  fmt.Sprintf("Customer %s updated", cu.FullName()),
		Type:     models.NotificationInfo,
	})

	httpresp.OK(c, cu)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := h.repo.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_delete_customer")
		return
	}
	if !found {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: id,
		Message:  fmt.Sprintf("Customer #%d removed", id),
		Type:     models.NotificationWarning,
	})

	httpresp.NoContent(c)
}
