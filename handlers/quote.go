package handlers

import (
	"net/http"

	"vendora/middleware"
	"vendora/services/quote"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// QuoteHandler exposes the quote-request lifecycle.
type QuoteHandler struct {
	Quotes quote.QuoteService
}

func NewQuoteHandler(quoteSvc quote.QuoteService) *QuoteHandler {
	return &QuoteHandler{Quotes: quoteSvc}
}

// Submit accepts a customer quote submission. The service forces status NEW.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var input quote.NewQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	created, err := h.Quotes.Submit(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SetStatus moves a quote to a new status, validating the transition.
func (h *QuoteHandler) SetStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	updated, err := h.Quotes.SetStatus(c.Param("quoteId"), input.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Respond records the vendor's reply and forces status QUOTED.
func (h *QuoteHandler) Respond(c *gin.Context) {
	var input struct {
		Response      string   `json:"response" binding:"required"`
		EstimatedCost *float64 `json:"estimatedCost"`
		EstimatedTime string   `json:"estimatedTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	updated, err := h.Quotes.Respond(c.Param("quoteId"), input.Response, input.EstimatedCost, input.EstimatedTime)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// VendorQuotes lists the authenticated vendor's incoming quotes.
func (h *QuoteHandler) VendorQuotes(c *gin.Context) {
	email := c.GetString(middleware.CtxIdentityEmail)
	quotes, err := h.Quotes.ListForVendorByEmail(email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// CustomerQuotes lists the authenticated customer's submitted quotes.
func (h *QuoteHandler) CustomerQuotes(c *gin.Context) {
	email := c.GetString(middleware.CtxIdentityEmail)
	quotes, err := h.Quotes.ListForCustomer(email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}
