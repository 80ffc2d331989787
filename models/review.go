package models

import "time"

// Review is a customer review of one vendor. A review contributes to the
// vendor's aggregate rating for its entire existence; flagging marks it for
// moderation but does not exclude it from aggregation.
type Review struct {
	ID               string    `bson:"id" json:"id"`
	VendorSlug       string    `bson:"vendorSlug" json:"vendorSlug"`
	CustomerName     string    `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerEmail    string    `bson:"customerEmail" json:"customerEmail"`
	Rating           int       `bson:"rating" json:"rating"` // 1-5
	Comment          string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Flagged          bool      `bson:"flagged" json:"flagged"`
	FlagReason       string    `bson:"flagReason,omitempty" json:"flagReason,omitempty"`
	VerifiedPurchase bool      `bson:"verifiedPurchase" json:"verifiedPurchase"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}
