package identity

import (
	"vendora/models"
	"vendora/utils"
)

// Resolve looks an email up across both identity collections, users first,
// then vendors. This is the only place that pattern lives.
func (s *DefaultIdentityService) Resolve(email string) (*Identity, error) {
	user, err := s.Users.GetByEmail(email)
	if err == nil {
		return identityFromUser(user), nil
	}
	if !utils.IsNotFound(err) {
		return nil, err
	}

	vendor, err := s.Vendors.GetByEmail(email)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, utils.NotFoundError{Resource: "identity", Key: email}
		}
		return nil, err
	}
	return identityFromVendor(vendor), nil
}

func identityFromUser(user *models.User) *Identity {
	role := RoleCustomer
	if user.Role == RoleAdmin {
		role = RoleAdmin
	}
	return &Identity{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         role,
		PasswordHash: user.PasswordHash,
		Disabled:     user.Banned,
	}
}

func identityFromVendor(vendor *models.Vendor) *Identity {
	return &Identity{
		ID:           vendor.ID,
		Email:        vendor.Email,
		Name:         vendor.StoreName,
		Role:         RoleVendor,
		VendorSlug:   vendor.Slug,
		PasswordHash: vendor.PasswordHash,
		Disabled:     vendor.Status != models.VendorStatusActive && vendor.Status != models.VendorStatusInactive,
	}
}
