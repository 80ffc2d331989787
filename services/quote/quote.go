package quote

import (
	"fmt"
	"time"

	"vendora/models"
	"vendora/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// Submit persists a fresh quote request. The status is forced to NEW no matter
// what the caller supplied; resubmission creates a new independent record.
func (s *DefaultQuoteService) Submit(input NewQuoteInput) (*models.QuoteRequest, error) {
	if err := validate.Struct(input); err != nil {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("invalid quote submission: %v", err)}
	}

	now := time.Now()
	quote := &models.QuoteRequest{
		ID:                 uuid.New().String(),
		VendorSlug:         input.VendorSlug,
		CustomerName:       input.CustomerName,
		CustomerEmail:      input.CustomerEmail,
		CustomerMobile:     input.CustomerMobile,
		ServiceRequested:   input.ServiceRequested,
		ProjectDescription: input.ProjectDescription,
		Budget:             input.Budget,
		PreferredDate:      input.PreferredDate,
		Status:             models.QuoteStatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(quote); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("quote submitted",
		zap.String("quoteId", quote.ID),
		zap.String("vendorSlug", quote.VendorSlug))
	return quote, nil
}

// SetStatus moves an existing quote to a new status. Illegal transitions are
// rejected; the stored status may still be the legacy PENDING alias, which
// compares equal to NEW.
func (s *DefaultQuoteService) SetStatus(quoteID, status string) (*models.QuoteRequest, error) {
	quote, err := s.Repo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}

	newStatus, known := CanonicalStatus(status)
	if !known {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("unknown quote status %q", status)}
	}
	if !CanTransition(quote.Status, newStatus) {
		return nil, utils.ValidationError{
			Reason: fmt.Sprintf("illegal status transition %s -> %s", quote.Status, newStatus),
		}
	}

	quote.Status = newStatus
	quote.UpdatedAt = time.Now()
	if err := s.Repo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Respond records the vendor's reply and forces the quote into QUOTED.
func (s *DefaultQuoteService) Respond(quoteID, response string, estimatedCost *float64, estimatedTime string) (*models.QuoteRequest, error) {
	if response == "" {
		return nil, utils.ValidationError{Reason: "vendor response must not be empty"}
	}

	quote, err := s.Repo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}

	quote.VendorResponse = response
	quote.EstimatedCost = estimatedCost
	quote.EstimatedTime = estimatedTime
	quote.Status = models.QuoteStatusQuoted
	quote.UpdatedAt = time.Now()
	if err := s.Repo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *DefaultQuoteService) ListForVendor(vendorSlug string) ([]models.QuoteRequest, error) {
	return s.Repo.ListByVendorSlug(vendorSlug)
}

// ListForVendorByEmail lists quotes for the vendor owning the given email.
func (s *DefaultQuoteService) ListForVendorByEmail(email string) ([]models.QuoteRequest, error) {
	slug, err := s.ResolveVendorSlugByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByVendorSlug(slug)
}

func (s *DefaultQuoteService) ListForCustomer(customerEmail string) ([]models.QuoteRequest, error) {
	return s.Repo.ListByCustomerEmail(customerEmail)
}

// ResolveVendorSlugByEmail translates an authenticated vendor's email into the
// slug used as the quote foreign key.
func (s *DefaultQuoteService) ResolveVendorSlugByEmail(email string) (string, error) {
	vendor, err := s.VendorRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	return vendor.Slug, nil
}
