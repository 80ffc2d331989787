package identity

import (
	"time"

	"vendora/models"
	"vendora/utils"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "user", Key: id}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, utils.NotFoundError{Resource: "user", Key: email}
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) ListAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if _, ok := f.users[user.Email]; !ok {
		return utils.NotFoundError{Resource: "user", Key: user.Email}
	}
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

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
