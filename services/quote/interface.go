package quote

import (
	"fmt"
	"time"

	quoteRepo "vendora/database/repository/quote"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"
)

// NewQuoteInput is a customer's quote submission. Any status supplied by the
// client is discarded; submissions always start at NEW.
type NewQuoteInput struct {
	VendorSlug         string     `json:"vendorSlug" validate:"required"`
	CustomerName       string     `json:"customerName"`
	CustomerEmail      string     `json:"customerEmail" validate:"required,email"`
	CustomerMobile     string     `json:"customerMobile"`
	ServiceRequested   string     `json:"serviceRequested" validate:"required"`
	ProjectDescription string     `json:"projectDescription"`
	Budget             *float64   `json:"budget" validate:"omitempty,gt=0"`
	PreferredDate      *time.Time `json:"preferredDate"`
	Status             string     `json:"status"`
}

// QuoteService manages the quote-request lifecycle.
type QuoteService interface {
	Submit(input NewQuoteInput) (*models.QuoteRequest, error)
	SetStatus(quoteID, status string) (*models.QuoteRequest, error)
	Respond(quoteID, response string, estimatedCost *float64, estimatedTime string) (*models.QuoteRequest, error)
	ListForVendor(vendorSlug string) ([]models.QuoteRequest, error)
	ListForVendorByEmail(email string) ([]models.QuoteRequest, error)
	ListForCustomer(customerEmail string) ([]models.QuoteRequest, error)
	ResolveVendorSlugByEmail(email string) (string, error)
}

// DefaultQuoteService is the production implementation.
type DefaultQuoteService struct {
	Repo       quoteRepo.QuoteRepository
	VendorRepo vendorRepo.VendorRepository
}

func NewDefaultQuoteService(repo quoteRepo.QuoteRepository, vendors vendorRepo.VendorRepository) (*DefaultQuoteService, error) {
	if repo == nil || vendors == nil {
		return nil, fmt.Errorf("quote service initialization error: one or more dependencies are nil")
	}
	return &DefaultQuoteService{Repo: repo, VendorRepo: vendors}, nil
}
