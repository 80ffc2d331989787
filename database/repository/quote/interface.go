package quoteRepo

import "vendora/models"

// QuoteRepository defines persistence operations for quote requests.
type QuoteRepository interface {
	Create(quote *models.QuoteRequest) error
	GetByID(id string) (*models.QuoteRequest, error)
	ListByVendorSlug(vendorSlug string) ([]models.QuoteRequest, error)
	ListByCustomerEmail(customerEmail string) ([]models.QuoteRequest, error)
	Update(quote *models.QuoteRequest) error
}
