package handlers

import (
	"net/http"

	"vendora/middleware"
	"vendora/services/vendor"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// VendorHandler exposes the authenticated vendor's own profile.
type VendorHandler struct {
	Vendors vendor.VendorService
}

func NewVendorHandler(vendorSvc vendor.VendorService) *VendorHandler {
	return &VendorHandler{Vendors: vendorSvc}
}

func (h *VendorHandler) GetProfile(c *gin.Context) {
	email := c.GetString(middleware.CtxIdentityEmail)
	v, err := h.Vendors.GetByEmail(email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VendorHandler) UpdateProfile(c *gin.Context) {
	var updates vendor.ProfileUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	email := c.GetString(middleware.CtxIdentityEmail)
	updated, err := h.Vendors.UpdateProfile(email, updates)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
