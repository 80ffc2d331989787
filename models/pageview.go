package models

import "time"

// PageView is one hit on a vendor's public profile. The collection is an
// append-only log; nothing updates or deletes page views in normal flow.
type PageView struct {
	ID         string    `bson:"id" json:"id"`
	VendorSlug string    `bson:"vendorSlug" json:"vendorSlug"`
	IPAddress  string    `bson:"ipAddress" json:"ipAddress"`
	UserAgent  string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Referrer   string    `bson:"referrer,omitempty" json:"referrer,omitempty"`
	ViewedAt   time.Time `bson:"viewedAt" json:"viewedAt"`
}
