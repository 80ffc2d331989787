package reviewRepo

import "vendora/models"

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	ListByVendorSlug(vendorSlug string) ([]models.Review, error)
	ListByFlagged(flagged bool) ([]models.Review, error)
	CountByVendorSlug(vendorSlug string) (int64, error)
	Update(review *models.Review) error
	Delete(id string) error
	Count() (int64, error)
}
