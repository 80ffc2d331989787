package handlers

import (
	"net/http"

	"vendora/services/analytics"
	"vendora/services/identity"
	"vendora/services/review"
	"vendora/services/vendor"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin surface: platform totals, vendor status
// management, user bans, and review moderation (flag/unflag/delete only).
type AdminHandler struct {
	Vendors   vendor.VendorService
	Reviews   review.ReviewService
	Analytics analytics.AnalyticsService
	Identity  identity.IdentityService
}

func NewAdminHandler(vendorSvc vendor.VendorService, reviewSvc review.ReviewService, analyticsSvc analytics.AnalyticsService, identitySvc identity.IdentityService) *AdminHandler {
	return &AdminHandler{Vendors: vendorSvc, Reviews: reviewSvc, Analytics: analyticsSvc, Identity: identitySvc}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	totals, err := h.Analytics.ComputePlatformTotals()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *AdminHandler) ListVendors(c *gin.Context) {
	vendors, err := h.Vendors.ListAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	v, err := h.Vendors.Approve(c.Param("vendorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) RejectVendor(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	v, err := h.Vendors.Reject(c.Param("vendorId"), input.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) SuspendVendor(c *gin.Context) {
	v, err := h.Vendors.Suspend(c.Param("vendorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Identity.ListUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	user, err := h.Identity.BanUser(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	user, err := h.Identity.UnbanUser(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) FlaggedReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListFlagged()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *AdminHandler) UnflagReview(c *gin.Context) {
	rv, err := h.Reviews.Unflag(c.Param("reviewId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	if err := h.Reviews.Delete(c.Param("reviewId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
