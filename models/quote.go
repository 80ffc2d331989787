package models

import "time"

// Quote request statuses. PENDING is a legacy alias for NEW still present in old
// records and seed data; it is accepted on input and in comparisons but never
// written by this code.
const (
	QuoteStatusNew       = "NEW"
	QuoteStatusPending   = "PENDING"
	QuoteStatusQuoted    = "QUOTED"
	QuoteStatusAccepted  = "ACCEPTED"
	QuoteStatusRejected  = "REJECTED"
	QuoteStatusCompleted = "COMPLETED"
	QuoteStatusClosed    = "CLOSED"
)

// QuoteRequest is a customer's request for a quote from one vendor, referenced
// by slug value rather than by document reference.
type QuoteRequest struct {
	ID                 string     `bson:"id" json:"id"`
	VendorSlug         string     `bson:"vendorSlug" json:"vendorSlug"`
	CustomerName       string     `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerEmail      string     `bson:"customerEmail" json:"customerEmail"`
	CustomerMobile     string     `bson:"customerMobile,omitempty" json:"customerMobile,omitempty"`
	ServiceRequested   string     `bson:"serviceRequested" json:"serviceRequested"`
	ProjectDescription string     `bson:"projectDescription,omitempty" json:"projectDescription,omitempty"`
	Budget             *float64   `bson:"budget,omitempty" json:"budget,omitempty"`
	PreferredDate      *time.Time `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"`
	Status             string     `bson:"status" json:"status"`
	VendorResponse     string     `bson:"vendorResponse,omitempty" json:"vendorResponse,omitempty"`
	EstimatedCost      *float64   `bson:"estimatedCost,omitempty" json:"estimatedCost,omitempty"`
	EstimatedTime      string     `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}
