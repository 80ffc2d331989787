package handlers

import (
	"net/http"
	"time"

	"vendora/middleware"
	"vendora/services/analytics"
	"vendora/services/vendor"
	"vendora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExploreHandler exposes the public vendor directory.
type ExploreHandler struct {
	Vendors   vendor.VendorService
	Analytics analytics.AnalyticsService
}

func NewExploreHandler(vendorSvc vendor.VendorService, analyticsSvc analytics.AnalyticsService) *ExploreHandler {
	return &ExploreHandler{Vendors: vendorSvc, Analytics: analyticsSvc}
}

// ListActive lists all ACTIVE vendors.
func (h *ExploreHandler) ListActive(c *gin.Context) {
	vendors, err := h.Vendors.ListActive()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// Profile returns one vendor's public profile and records the page view.
func (h *ExploreHandler) Profile(c *gin.Context) {
	slug := c.Param("slug")
	v, err := h.Vendors.GetBySlug(slug)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// A failed view write must not break the profile response.
	ip := middleware.GetClientIP(c)
	if err := h.Analytics.RecordView(slug, ip, c.GetHeader("User-Agent"), c.GetHeader("Referer"), time.Now()); err != nil {
		utils.GetLogger().Warn("failed to record page view",
			zap.String("slug", slug), zap.Error(err))
	}

	c.JSON(http.StatusOK, v)
}

// CheckSlug reports the slug a store name would get and whether it is free.
func (h *ExploreHandler) CheckSlug(c *gin.Context) {
	storeName := c.Query("storeName")
	if storeName == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "storeName query parameter is required")
		return
	}
	slug, available, err := h.Vendors.CheckSlugAvailability(storeName)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slug": slug, "available": available})
}

// Search filters vendors by city or type; with no filters it lists active vendors.
func (h *ExploreHandler) Search(c *gin.Context) {
	if city := c.Query("city"); city != "" {
		vendors, err := h.Vendors.ListByCity(city)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, vendors)
		return
	}
	if vendorType := c.Query("vendorType"); vendorType != "" {
		vendors, err := h.Vendors.ListByType(vendorType)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, vendors)
		return
	}
	h.ListActive(c)
}
