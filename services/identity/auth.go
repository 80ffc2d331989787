package identity

import (
	"context"
	"fmt"
	"time"

	"vendora/models"
	"vendora/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

const tokenTTL = 72 * time.Hour

// CustomerSignup registers a customer account and signs them in.
func (s *DefaultIdentityService) CustomerSignup(input SignupInput) (*AuthResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("invalid signup: %v", err)}
	}
	exists, err := s.Users.ExistsByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ValidationError{Reason: "email already in use"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     string(hash),
		Role:             RoleCustomer,
		ConsentConfirmed: input.ConsentConfirmed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return s.issueToken(identityFromUser(user))
}

// VendorSignup registers a vendor account and signs them in. The slug is
// derived from the store name and must be free, as must the email.
func (s *DefaultIdentityService) VendorSignup(input VendorSignupInput) (*AuthResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("invalid vendor signup: %v", err)}
	}
	exists, err := s.Vendors.ExistsByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ValidationError{Reason: "email already in use"}
	}

	slug := utils.GenerateSlug(input.StoreName)
	if slug == "" {
		return nil, utils.ValidationError{Reason: "store name yields an empty slug"}
	}
	taken, err := s.Vendors.ExistsBySlug(slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.ValidationError{Reason: "store name already taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	vendor := &models.Vendor{
		ID:               uuid.New().String(),
		Slug:             slug,
		StoreName:        input.StoreName,
		BusinessName:     input.BusinessName,
		OwnerName:        input.OwnerName,
		Email:            input.Email,
		PasswordHash:     string(hash),
		VendorType:       input.VendorType,
		Mobile:           input.Mobile,
		City:             input.City,
		Pincode:          input.Pincode,
		Status:           models.VendorStatusActive,
		SubscriptionPlan: "BASIC",
		Role:             RoleVendor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Vendors.Create(vendor); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("vendor registered",
		zap.String("vendorId", vendor.ID), zap.String("slug", slug))
	return s.issueToken(identityFromVendor(vendor))
}

// Login authenticates either kind of identity by email and password.
func (s *DefaultIdentityService) Login(email, password string) (*AuthResponse, error) {
	ident, err := s.Resolve(email)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, utils.ValidationError{Reason: "invalid credentials"}
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ValidationError{Reason: "invalid credentials"}
	}
	if ident.Disabled {
		return nil, utils.ValidationError{Reason: "account is not allowed to sign in"}
	}
	return s.issueToken(ident)
}

// ChangePassword verifies the current password for whichever identity owns the
// email and replaces it.
func (s *DefaultIdentityService) ChangePassword(email, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return utils.ValidationError{Reason: "new password must be at least 8 characters"}
	}

	ident, err := s.Resolve(email)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(currentPassword)); err != nil {
		return utils.ValidationError{Reason: "current password is incorrect"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	switch ident.Role {
	case RoleVendor:
		vendor, err := s.Vendors.GetByEmail(email)
		if err != nil {
			return err
		}
		vendor.PasswordHash = string(hash)
		vendor.UpdatedAt = time.Now()
		return s.Vendors.Update(vendor)
	default:
		user, err := s.Users.GetByEmail(email)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
		user.UpdatedAt = time.Now()
		return s.Users.Update(user)
	}
}

// RevokeToken drops the cached token hash so the middleware rejects the token
// on its next use.
func (s *DefaultIdentityService) RevokeToken(identityID string) error {
	if s.AuthCache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.AuthCache.Del(ctx, AuthTokenKey(identityID)).Err()
}

func (s *DefaultIdentityService) issueToken(ident *Identity) (*AuthResponse, error) {
	token, err := utils.GenerateToken(ident.ID, ident.Email, ident.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.AuthCache.Set(ctx, AuthTokenKey(ident.ID), utils.HashToken(token), tokenTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to cache token hash: %w", err)
		}
	}
	return &AuthResponse{Token: token, Identity: *ident}, nil
}

// AuthTokenKey is the redis key holding the live token hash for an identity.
func AuthTokenKey(identityID string) string {
	return "authToken:" + identityID
}
