package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	repo *repository.ShopRepository
}

func NewNotificationHandler(repo *repository.ShopRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// List returns the feed newest first. ?unread=true keeps only unread
// entries; ?limit caps the page (default 50, max 200).
func (h *NotificationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	onlyUnread := c.Query("unread") == "true"

	items, err := h.repo.ListNotifications(ctx)
	if err != nil {
		writeError(c, err, "failed_to_list_notifications")
		return
	}
	unread, err := h.repo.UnreadNotifications(ctx)
	if err != nil {
		writeError(c, err, "failed_to_list_notifications")
		return
	}

	out := make([]models.Notification, 0, min(limit, len(items)))
	for _, n := range items {
		if onlyUnread && n.Read {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, n)
	}

	httpresp.OK(c, gin.H{
		"data":   out,
		"total":  len(items),
		"unread": unread,
	})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	changed, err := h.repo.MarkAllNotificationsRead(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_update_notifications")
		return
	}

	httpresp.OK(c, gin.H{"marked": changed})
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.repo.ClearNotifications(c.Request.Context()); err != nil {
		writeError(c, err, "failed_to_clear_notifications")
		return
	}

	httpresp.NoContent(c)
}
