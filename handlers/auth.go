package handlers

import (
	"net/http"

	"vendora/middleware"
	"vendora/services/identity"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the signup/login flows.
type AuthHandler struct {
	Identity identity.IdentityService
}

func NewAuthHandler(identitySvc identity.IdentityService) *AuthHandler {
	return &AuthHandler{Identity: identitySvc}
}

func (h *AuthHandler) CustomerSignup(c *gin.Context) {
	var input identity.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.Identity.CustomerSignup(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) VendorSignup(c *gin.Context) {
	var input identity.VendorSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.Identity.VendorSignup(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.Identity.Login(input.Email, input.Password)
	if err != nil {
		if utils.IsValidation(err) {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	email := c.GetString(middleware.CtxIdentityEmail)
	if err := h.Identity.ChangePassword(email, input.CurrentPassword, input.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	id := c.GetString(middleware.CtxIdentityID)
	if err := h.Identity.RevokeToken(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
