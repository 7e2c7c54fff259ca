package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/usecase/dashboard"
	"github.com/BruksfildServices01/quickcut/internal/usecase/search"
)

type DashboardHandler struct {
	dashboard *dashboard.Dashboard
	search    *search.Search
}

func NewDashboardHandler(repo *repository.ShopRepository) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard.New(repo),
		search:    search.New(repo),
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_load_dashboard")
		return
	}

	today, err := h.dashboard.Today(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_load_dashboard")
		return
	}

	httpresp.OK(c, gin.H{
		"stats": stats,
		"today": today,
	})
}

// Search answers an empty list for queries under two characters.
func (h *DashboardHandler) Search(c *gin.Context) {
	results, err := h.search.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err, "search_failed")
		return
	}

	httpresp.List(c, results)
}
