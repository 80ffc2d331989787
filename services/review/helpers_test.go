package review

import (
	"sync"
	"time"

	"vendora/models"
	"vendora/utils"
)

// fakeReviewRepo is an in-memory ReviewRepository for service tests. It is
// safe for concurrent use so tests can hammer it from multiple goroutines.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewRepo) Create(review *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) GetByID(id string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "review", Key: id}
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) ListByVendorSlug(vendorSlug string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.VendorSlug == vendorSlug {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByFlagged(flagged bool) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.Flagged == flagged {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) CountByVendorSlug(vendorSlug string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reviews {
		if r.VendorSlug == vendorSlug {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) Update(review *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[review.ID]; !ok {
		return utils.NotFoundError{Resource: "review", Key: review.ID}
	}
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[id]; !ok {
		return utils.NotFoundError{Resource: "review", Key: id}
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.reviews)), nil
}

// fakeVendorRepo is an in-memory VendorRepository keyed by slug. It counts
// UpdateReputation calls so tests can assert which operations recompute.
type fakeVendorRepo struct {
	mu              sync.Mutex
	vendors         map[string]*models.Vendor
	reputationCalls int
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[string]*models.Vendor)}
}

func (f *fakeVendorRepo) Create(vendor *models.Vendor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *vendor
	f.vendors[vendor.Slug] = &stored
	return nil
}

func (f *fakeVendorRepo) GetByID(id string) (*models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vendors {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "vendor", Key: id}
}

func (f *fakeVendorRepo) GetBySlug(slug string) (*models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vendor, ok := f.vendors[slug]
	if !ok {
		return nil, utils.NotFoundError{Resource: "vendor", Key: slug}
	}
	copied := *vendor
	return &copied, nil
}

func (f *fakeVendorRepo) GetByEmail(email string) (*models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vendors {
		if v.Email == email {
			copied := *v
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "vendor", Key: email}
}

func (f *fakeVendorRepo) ExistsBySlug(slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.vendors[slug]
	return ok, nil
}

func (f *fakeVendorRepo) ExistsByEmail(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vendors {
		if v.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendorRepo) ListByStatus(status string) ([]models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Vendor
	for _, v := range f.vendors {
		if v.Status == status {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) ListAll() ([]models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Vendor
	for _, v := range f.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVendorRepo) ListByCity(city string) ([]models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Vendor
	for _, v := range f.vendors {
		if v.City == city {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) ListByType(vendorType string) ([]models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Vendor
	for _, v := range f.vendors {
		if v.VendorType == vendorType {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) Update(vendor *models.Vendor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.vendors[vendor.Slug]; !ok {
		return utils.NotFoundError{Resource: "vendor", Key: vendor.Slug}
	}
	stored := *vendor
	f.vendors[vendor.Slug] = &stored
	return nil
}

func (f *fakeVendorRepo) UpdateReputation(slug string, rating float64, reviewCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reputationCalls++
	vendor, ok := f.vendors[slug]
	if !ok {
		return utils.NotFoundError{Resource: "vendor", Key: slug}
	}
	vendor.Rating = &rating
	vendor.ReviewCount = reviewCount
	return nil
}

func (f *fakeVendorRepo) ClearExpiredPromotions(now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cleared int64
	for _, v := range f.vendors {
		if v.Promoted && v.PromotedUntil != nil && v.PromotedUntil.Before(now) {
			v.Promoted = false
			v.PromotedUntil = nil
			cleared++
		}
	}
	return cleared, nil
}

func (f *fakeVendorRepo) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.vendors)), nil
}
