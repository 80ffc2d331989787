package handlers

import (
	"net/http"

	"vendora/middleware"
	"vendora/services/review"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review creation and moderation.
type ReviewHandler struct {
	Reviews review.ReviewService
}

func NewReviewHandler(reviewSvc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviewSvc}
}

// Create records a review and triggers the vendor rating recomputation.
func (h *ReviewHandler) Create(c *gin.Context) {
	var input review.NewReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	created, err := h.Reviews.Create(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// VendorReviews lists the public reviews for a vendor slug.
func (h *ReviewHandler) VendorReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListForVendor(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// MyVendorReviews lists reviews for the authenticated vendor.
func (h *ReviewHandler) MyVendorReviews(c *gin.Context) {
	email := c.GetString(middleware.CtxIdentityEmail)
	reviews, err := h.Reviews.ListForVendorByEmail(email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Flag marks a review for moderation. The vendor's aggregate is untouched.
func (h *ReviewHandler) Flag(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	flagged, err := h.Reviews.Flag(c.Param("reviewId"), input.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flagged)
}
