package handlers

import (
	"net/http"
	"time"

	"vendora/middleware"
	"vendora/services/analytics"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the derived vendor analytics.
type DashboardHandler struct {
	Analytics analytics.AnalyticsService
}

func NewDashboardHandler(analyticsSvc analytics.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{Analytics: analyticsSvc}
}

// Overview returns the full dashboard for one vendor slug.
func (h *DashboardHandler) Overview(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "slug query parameter is required")
		return
	}
	metrics, err := h.Analytics.ComputeDashboard(slug, time.Now())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Stats returns the authenticated vendor's home-screen stats block.
func (h *DashboardHandler) Stats(c *gin.Context) {
	email := c.GetString(middleware.CtxIdentityEmail)
	stats, err := h.Analytics.ComputeVendorStats(email, time.Now())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
