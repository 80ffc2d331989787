package analytics

import (
	"time"

	"vendora/models"
	"vendora/utils"
)

// Slim in-memory fakes backing the analytics service tests. State is seeded
// directly; only the read paths the service exercises matter here.

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

type fakeQuoteRepo struct {
	quotes []models.QuoteRequest
}

func (f *fakeQuoteRepo) Create(quote *models.QuoteRequest) error {
	f.quotes = append(f.quotes, *quote)
	return nil
}

func (f *fakeQuoteRepo) GetByID(id string) (*models.QuoteRequest, error) {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			copied := f.quotes[i]
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "quote", Key: id}
}

func (f *fakeQuoteRepo) ListByVendorSlug(vendorSlug string) ([]models.QuoteRequest, error) {
	var out []models.QuoteRequest
	for _, q := range f.quotes {
		if q.VendorSlug == vendorSlug {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) ListByCustomerEmail(customerEmail string) ([]models.QuoteRequest, error) {
	var out []models.QuoteRequest
	for _, q := range f.quotes {
		if q.CustomerEmail == customerEmail {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) Update(quote *models.QuoteRequest) error {
	for i := range f.quotes {
		if f.quotes[i].ID == quote.ID {
			f.quotes[i] = *quote
			return nil
		}
	}
	return utils.NotFoundError{Resource: "quote", Key: quote.ID}
}

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) Create(review *models.Review) error {
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) GetByID(id string) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			copied := f.reviews[i]
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "review", Key: id}
}

func (f *fakeReviewRepo) ListByVendorSlug(vendorSlug string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.VendorSlug == vendorSlug {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByFlagged(flagged bool) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.Flagged == flagged {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) CountByVendorSlug(vendorSlug string) (int64, error) {
	var n int64
	for _, r := range f.reviews {
		if r.VendorSlug == vendorSlug {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) Update(review *models.Review) error {
	for i := range f.reviews {
		if f.reviews[i].ID == review.ID {
			f.reviews[i] = *review
			return nil
		}
	}
	return utils.NotFoundError{Resource: "review", Key: review.ID}
}

func (f *fakeReviewRepo) Delete(id string) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundError{Resource: "review", Key: id}
}

func (f *fakeReviewRepo) Count() (int64, error) {
	return int64(len(f.reviews)), nil
}

type fakePageViewRepo struct {
	views []models.PageView
}

func (f *fakePageViewRepo) Create(view *models.PageView) error {
	f.views = append(f.views, *view)
	return nil
}

func (f *fakePageViewRepo) CountByVendorSlug(vendorSlug string) (int64, error) {
	var n int64
	for _, v := range f.views {
		if v.VendorSlug == vendorSlug {
			n++
		}
	}
	return n, nil
}

func (f *fakePageViewRepo) CountByVendorSlugAfter(vendorSlug string, after time.Time) (int64, error) {
	var n int64
	for _, v := range f.views {
		if v.VendorSlug == vendorSlug && v.ViewedAt.After(after) {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "user", Key: id}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "user", Key: email}
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListAll() ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return utils.NotFoundError{Resource: "user", Key: user.ID}
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}
