package review

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

// Create persists a review and then recomputes the owning vendor's aggregate
// rating. The recomputation is serialized per vendor slug.
func (s *DefaultReviewService) Create(input NewReviewInput) (*models.Review, error) {
	if err := validate.Struct(input); err != nil {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("invalid review: %v", err)}
	}

	rv := &models.Review{
		ID:               uuid.New().String(),
		VendorSlug:       input.VendorSlug,
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		Rating:           input.Rating,
		Comment:          input.Comment,
		Flagged:          false,
		VerifiedPurchase: input.VerifiedPurchase,
		CreatedAt:        time.Now(),
	}
	if err := s.Repo.Create(rv); err != nil {
		return nil, err
	}

	if err := s.recomputeVendorRating(rv.VendorSlug); err != nil {
		return nil, fmt.Errorf("review saved but rating recomputation failed: %w", err)
	}
	return rv, nil
}

// recomputeVendorRating derives the vendor's rating and review count from the
// current review set and persists them. An empty set leaves the stored rating
// untouched. The lock covers fetch, aggregate and persist.
func (s *DefaultReviewService) recomputeVendorRating(vendorSlug string) error {
	lock := s.locks.get(vendorSlug)
	lock.Lock()
	defer lock.Unlock()

	reviews, err := s.Repo.ListByVendorSlug(vendorSlug)
	if err != nil {
		return err
	}
	rating, count, ok := Aggregate(reviews)
	if !ok {
		return nil
	}
	if err := s.VendorRepo.UpdateReputation(vendorSlug, rating, count); err != nil {
		return err
	}

	utils.GetLogger().Debug("vendor rating recomputed",
		zap.String("vendorSlug", vendorSlug),
		zap.Float64("rating", rating),
		zap.Int("reviewCount", count))
	return nil
}

// Flag marks a review for moderation. The aggregate is not recomputed; a
// flagged review keeps contributing to its vendor's rating.
func (s *DefaultReviewService) Flag(reviewID, reason string) (*models.Review, error) {
	rv, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	rv.Flagged = true
	rv.FlagReason = reason
	if err := s.Repo.Update(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Unflag clears the moderation flag and its reason.
func (s *DefaultReviewService) Unflag(reviewID string) (*models.Review, error) {
	rv, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	rv.Flagged = false
	rv.FlagReason = ""
	if err := s.Repo.Update(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Delete removes a review outright. Admin-only. The stored aggregate is left
// as-is; it refreshes on the vendor's next review creation.
func (s *DefaultReviewService) Delete(reviewID string) error {
	return s.Repo.Delete(reviewID)
}

func (s *DefaultReviewService) ListForVendor(vendorSlug string) ([]models.Review, error) {
	return s.Repo.ListByVendorSlug(vendorSlug)
}

// ListForVendorByEmail lists reviews for the vendor owning the given email.
func (s *DefaultReviewService) ListForVendorByEmail(email string) ([]models.Review, error) {
	vendor, err := s.VendorRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByVendorSlug(vendor.Slug)
}

func (s *DefaultReviewService) ListFlagged() ([]models.Review, error) {
	return s.Repo.ListByFlagged(true)
}
