package identity

import (
	"fmt"

	userRepo "vendora/database/repository/user"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"

	"github.com/go-redis/redis/v8"
)

// Roles an authenticated identity can carry.
const (
	RoleCustomer = "CUSTOMER"
	RoleVendor   = "VENDOR"
	RoleAdmin    = "ADMIN"
)

// Identity is the single resolved view over the two identity collections.
// Customers and admins live in users, vendors in vendors; resolution happens
// once at the boundary so nothing downstream re-implements the
// try-users-then-vendors lookup.
type Identity struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Role         string `json:"role"`
	VendorSlug   string `json:"vendorSlug,omitempty"` // set for vendors only
	PasswordHash string `json:"-"`
	Disabled     bool   `json:"-"` // banned user or non-active vendor
}

// SignupInput is a customer registration.
type SignupInput struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	ConsentConfirmed bool   `json:"consentConfirmed"`
}

// VendorSignupInput is a vendor registration. The slug is derived from the
// store name.
type VendorSignupInput struct {
	StoreName    string `json:"storeName" validate:"required"`
	BusinessName string `json:"businessName"`
	OwnerName    string `json:"ownerName"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	VendorType   string `json:"vendorType" validate:"required"`
	Mobile       string `json:"mobile"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

// IdentityService resolves identities and runs the auth flows.
type IdentityService interface {
	Resolve(email string) (*Identity, error)
	CustomerSignup(input SignupInput) (*AuthResponse, error)
	VendorSignup(input VendorSignupInput) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	ChangePassword(email, currentPassword, newPassword string) error
	RevokeToken(identityID string) error

	// Admin operations.
	EnsureAdmin(name, email, password string) error
	ListUsers() ([]models.User, error)
	BanUser(userID string) (*models.User, error)
	UnbanUser(userID string) (*models.User, error)
}

// DefaultIdentityService is the production implementation.
type DefaultIdentityService struct {
	Users   userRepo.UserRepository
	Vendors vendorRepo.VendorRepository

	// AuthCache holds hashes of live tokens keyed by identity ID; missing or
	// mismatched hashes fail middleware checks, which is what revocation uses.
	AuthCache *redis.Client
}

func NewDefaultIdentityService(users userRepo.UserRepository, vendors vendorRepo.VendorRepository, authCache *redis.Client) (*DefaultIdentityService, error) {
	if users == nil || vendors == nil {
		return nil, fmt.Errorf("identity service initialization error: one or more dependencies are nil")
	}
	return &DefaultIdentityService{Users: users, Vendors: vendors, AuthCache: authCache}, nil
}
