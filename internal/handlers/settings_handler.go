package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

type SettingsHandler struct {
	repo  *repository.ShopRepository
	audit *audit.Dispatcher
}

func NewSettingsHandler(repo *repository.ShopRepository, dispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{repo: repo, audit: dispatcher}
}

type UpdateSettingsRequest struct {
	ShopName        *string `json:"shop_name"`
	ShopPhone       *string `json:"shop_phone"`
	ShopAddress     *string `json:"shop_address"`
	ShopDescription *string `json:"shop_description"`
	OpeningTime     *string `json:"opening_time"`
	ClosingTime     *string `json:"closing_time"`
	SlotDuration    *int    `json:"slot_duration"`
	MaxAppointments *int    `json:"max_appointments"`
	Timezone        *string `json:"timezone"`
}

type UpdateNotificationSettingsRequest struct {
	Email     *bool `json:"email"`
	SMS       *bool `json:"sms"`
	Reminders *bool `json:"reminders"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	shop, err := h.repo.GetSettings(ctx)
	if err != nil {
		writeError(c, err, "failed_to_get_settings")
		return
	}
	notif, err := h.repo.GetNotificationSettings(ctx)
	if err != nil {
		writeError(c, err, "failed_to_get_settings")
		return
	}

	httpresp.OK(c, gin.H{
		"shop":          shop,
		"notifications": notif,
	})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.repo.GetSettings(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_get_settings")
		return
	}

	setString(&s.ShopName, req.ShopName)
	setString(&s.ShopPhone, req.ShopPhone)
	setString(&s.ShopAddress, req.ShopAddress)
	setString(&s.ShopDescription, req.ShopDescription)
	setString(&s.OpeningTime, req.OpeningTime)
	setString(&s.ClosingTime, req.ClosingTime)
	setString(&s.Timezone, req.Timezone)
	setValue(&s.SlotDuration, req.SlotDuration)
	setValue(&s.MaxAppointments, req.MaxAppointments)

	if code, msg := validateSettings(&s); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	if err := h.repo.SaveSettings(c.Request.Context(), s); err != nil {
		writeError(c, err, "failed_to_save_settings")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:  "settings_updated",
		Entity:  "settings",
		Message: "Shop settings updated",
		Type:    models.NotificationInfo,
	})

	httpresp.OK(c, s)
}

func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	var req UpdateNotificationSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := h.repo.GetNotificationSettings(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_get_settings")
		return
	}
	setValue(&n.Email, req.Email)
	setValue(&n.SMS, req.SMS)
	setValue(&n.Reminders, req.Reminders)

	if err := h.repo.SaveNotificationSettings(c.Request.Context(), n); err != nil {
		writeError(c, err, "failed_to_save_settings")
		return
	}

	httpresp.OK(c, n)
}

// validateSettings normalizes the opening hours to HH:MM and returns an
// error code when the settings are unusable.
func validateSettings(s *models.ShopSettings) (code, message string) {
	opening, err := timeofday.Parse(s.OpeningTime)
	if err != nil {
		return "invalid_opening_time", "Opening time must be HH:MM."
	}
	closing, err := timeofday.Parse(s.ClosingTime)
	if err != nil {
		return "invalid_closing_time", "Closing time must be HH:MM."
	}
	if opening >= closing {
		return "invalid_hours", "Opening time must be before closing time."
	}
	if s.SlotDuration <= 0 {
		return "invalid_slot_duration", "Slot duration must be positive."
	}
	if s.MaxAppointments <= 0 {
		return "invalid_max_appointments", "Max appointments must be positive."
	}
	if !timezone.IsValid(s.Timezone) {
		return "invalid_timezone", "Unknown timezone."
	}

	s.OpeningTime = timeofday.Format24h(opening)
	s.ClosingTime = timeofday.Format24h(closing)
	return "", ""
}
