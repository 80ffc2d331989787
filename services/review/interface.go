package review

import (
	"fmt"

	reviewRepo "vendora/database/repository/review"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"
)

// NewReviewInput is a customer's review submission.
type NewReviewInput struct {
	VendorSlug       string `json:"vendorSlug" validate:"required"`
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail" validate:"required,email"`
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Comment          string `json:"comment"`
	VerifiedPurchase bool   `json:"verifiedPurchase"`
}

// ReviewService records reviews and maintains each vendor's aggregate rating.
// Only Create recomputes the aggregate; Flag, Unflag and Delete are moderation
// operations and leave the stored rating and review count alone.
type ReviewService interface {
	Create(input NewReviewInput) (*models.Review, error)
	Flag(reviewID, reason string) (*models.Review, error)
	Unflag(reviewID string) (*models.Review, error)
	Delete(reviewID string) error
	ListForVendor(vendorSlug string) ([]models.Review, error)
	ListForVendorByEmail(email string) ([]models.Review, error)
	ListFlagged() ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo       reviewRepo.ReviewRepository
	VendorRepo vendorRepo.VendorRepository

	locks slugLocks
}

func NewDefaultReviewService(repo reviewRepo.ReviewRepository, vendors vendorRepo.VendorRepository) (*DefaultReviewService, error) {
	if repo == nil || vendors == nil {
		return nil, fmt.Errorf("review service initialization error: one or more dependencies are nil")
	}
	return &DefaultReviewService{Repo: repo, VendorRepo: vendors}, nil
}
