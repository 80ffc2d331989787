package pageviewRepo

import (
	"time"

	"vendora/models"
)

// PageViewRepository defines persistence operations for the page-view log.
// The log is append-only; there is no update or delete.
type PageViewRepository interface {
	Create(view *models.PageView) error
	CountByVendorSlug(vendorSlug string) (int64, error)
	CountByVendorSlugAfter(vendorSlug string, after time.Time) (int64, error)
}
