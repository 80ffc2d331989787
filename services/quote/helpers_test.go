package quote

import (
	"time"

	"vendora/models"
	"vendora/utils"
)

// fakeQuoteRepo is an in-memory QuoteRepository for service tests.
type fakeQuoteRepo struct {
	quotes map[string]*models.QuoteRequest
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*models.QuoteRequest)}
}

func (f *fakeQuoteRepo) Create(quote *models.QuoteRequest) error {
	stored := *quote
	f.quotes[quote.ID] = &stored
	return nil
}

func (f *fakeQuoteRepo) GetByID(id string) (*models.QuoteRequest, error) {
	quote, ok := f.quotes[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "quote", Key: id}
	}
	copied := *quote
	return &copied, nil
}

func (f *fakeQuoteRepo) ListByVendorSlug(vendorSlug string) ([]models.QuoteRequest, error) {
	var out []models.QuoteRequest
	for _, q := range f.quotes {
		if q.VendorSlug == vendorSlug {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) ListByCustomerEmail(customerEmail string) ([]models.QuoteRequest, error) {
	var out []models.QuoteRequest
	for _, q := range f.quotes {
		if q.CustomerEmail == customerEmail {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) Update(quote *models.QuoteRequest) error {
	if _, ok := f.quotes[quote.ID]; !ok {
		return utils.NotFoundError{Resource: "quote", Key: quote.ID}
	}
	stored := *quote
	f.quotes[quote.ID] = &stored
	return nil
}

// fakeVendorRepo is an in-memory VendorRepository keyed by slug.
type fakeVendorRepo struct {
	vendors map[string]*models.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[string]*models.Vendor)}
}

func (f *fakeVendorRepo) Create(vendor *models.Vendor) error {
	stored := *vendor
	f.vendors[vendor.Slug] = &stored
	return nil
}

func (f *fakeVendorRepo) GetByID(id string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "vendor", Key: id}
}

func (f *fakeVendorRepo) GetBySlug(slug string) (*models.Vendor, error) {
	vendor, ok := f.vendors[slug]
	if !ok {
		return nil, utils.NotFoundError{Resource: "vendor", Key: slug}
	}
	copied := *vendor
	return &copied, nil
}

func (f *fakeVendorRepo) GetByEmail(email string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.Email == email {
			copied := *v
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "vendor", Key: email}
}

func (f *fakeVendorRepo) ExistsBySlug(slug string) (bool, error) {
	_, ok := f.vendors[slug]
	return ok, nil
}

func (f *fakeVendorRepo) ExistsByEmail(email string) (bool, error) {
	for _, v := range f.vendors {
		if v.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendorRepo) ListByStatus(status string) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, v := range f.vendors {
		if v.Status == status {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) ListAll() ([]models.Vendor, error) {
	var out []models.Vendor
	for _, v := range f.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVendorRepo) ListByCity(city string) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, v := range f.vendors {
		if v.City == city {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) ListByType(vendorType string) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, v := range f.vendors {
		if v.VendorType == vendorType {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) Update(vendor *models.Vendor) error {
	if _, ok := f.vendors[vendor.Slug]; !ok {
		return utils.NotFoundError{Resource: "vendor", Key: vendor.Slug}
	}
	stored := *vendor
	f.vendors[vendor.Slug] = &stored
	return nil
}

func (f *fakeVendorRepo) UpdateReputation(slug string, rating float64, reviewCount int) error {
	vendor, ok := f.vendors[slug]
	if !ok {
		return utils.NotFoundError{Resource: "vendor", Key: slug}
	}
	vendor.Rating = &rating
	vendor.ReviewCount = reviewCount
	return nil
}

func (f *fakeVendorRepo) ClearExpiredPromotions(now time.Time) (int64, error) {
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
	return int64(len(f.vendors)), nil
}
