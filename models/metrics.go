package models

// DashboardMetrics is the point-in-time dashboard for one vendor. It is derived
// fresh from the store on every request and never persisted or cached.
type DashboardMetrics struct {
	VendorName       string  `json:"vendorName"`
	Slug             string  `json:"slug"`
	SubscriptionPlan string  `json:"subscriptionPlan,omitempty"`
	TotalViews       int64   `json:"totalViews"`
	RecentViews7d    int64   `json:"recentViews7d"`
	RecentViews30d   int64   `json:"recentViews30d"`
	TotalLeads       int64   `json:"totalLeads"`
	RecentLeads7d    int64   `json:"recentLeads7d"`
	TotalReviews     int64   `json:"totalReviews"`
	AverageRating    float64 `json:"averageRating"`
	ConversionRate   float64 `json:"conversionRate"` // percent, two decimals
}

// VendorStats is the lighter stats block shown on the vendor home screen.
type VendorStats struct {
	TotalViews      int64   `json:"totalViews"`
	QuoteRequests   int64   `json:"quoteRequests"`
	PendingQuotes   int64   `json:"pendingQuotes"`
	AcceptedQuotes  int64   `json:"acceptedQuotes"`
	CompletedQuotes int64   `json:"completedQuotes"`
	TotalReviews    int64   `json:"totalReviews"`
	AverageRating   float64 `json:"averageRating"`
}

// PlatformTotals is the admin dashboard summary.
type PlatformTotals struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalVendors int64 `json:"totalVendors"`
	TotalReviews int64 `json:"totalReviews"`
}
