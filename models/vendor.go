package models

import "time"

// Vendor account statuses.
const (
	VendorStatusActive    = "ACTIVE"
	VendorStatusInactive  = "INACTIVE"
	VendorStatusSuspended = "SUSPENDED"
	VendorStatusRejected  = "REJECTED"
)

// Vendor is a service vendor listed in the directory. Rating and ReviewCount are
// derived from the vendor's reviews and written only by the review aggregator;
// no other path may edit them.
type Vendor struct {
	ID           string `bson:"id" json:"id"`
	Slug         string `bson:"slug" json:"slug"`
	StoreName    string `bson:"storeName" json:"storeName"`
	BusinessName string `bson:"businessName,omitempty" json:"businessName,omitempty"`
	OwnerName    string `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Mobile       string `bson:"mobile,omitempty" json:"mobile,omitempty"`
	VendorType   string `bson:"vendorType" json:"vendorType"` // Carpenter, Painter, etc.
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	Pincode      string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Status       string `bson:"status" json:"status"`
	RejectReason string `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`

	LogoUrl    string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	BannerUrl  string `bson:"bannerUrl,omitempty" json:"bannerUrl,omitempty"`
	ThemeColor string `bson:"themeColor,omitempty" json:"themeColor,omitempty"`

	// Reputation, owned by the review aggregator. Rating is nil until the first
	// review lands.
	Rating      *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewCount int      `bson:"reviewCount" json:"reviewCount"`

	SubscriptionPlan string     `bson:"subscriptionPlan,omitempty" json:"subscriptionPlan,omitempty"` // BASIC, PREMIUM
	Promoted         bool       `bson:"promoted" json:"promoted"`
	PromotedUntil    *time.Time `bson:"promotedUntil,omitempty" json:"promotedUntil,omitempty"`

	Role      string    `bson:"role" json:"role"` // VENDOR
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
