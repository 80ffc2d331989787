package analytics

import (
	"strings"
	"time"

	"vendora/models"
	"vendora/services/quote"
	"vendora/utils"
)

// ComputeDashboard derives the full dashboard for one vendor as a pure function
// of current store state.
func (s *DefaultAnalyticsService) ComputeDashboard(vendorSlug string, now time.Time) (*models.DashboardMetrics, error) {
	vendor, err := s.VendorRepo.GetBySlug(vendorSlug)
	if err != nil {
		return nil, err
	}

	metrics := &models.DashboardMetrics{
		VendorName:       vendorDisplayName(vendor),
		Slug:             vendor.Slug,
		SubscriptionPlan: vendor.SubscriptionPlan,
	}

	metrics.TotalViews, err = s.PageViewRepo.CountByVendorSlug(vendorSlug)
	if err != nil {
		return nil, err
	}
	metrics.RecentViews7d, err = s.PageViewRepo.CountByVendorSlugAfter(vendorSlug, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	metrics.RecentViews30d, err = s.PageViewRepo.CountByVendorSlugAfter(vendorSlug, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	quotes, err := s.QuoteRepo.ListByVendorSlug(vendorSlug)
	if err != nil {
		return nil, err
	}
	metrics.TotalLeads = int64(len(quotes))
	weekAgo := now.AddDate(0, 0, -7)
	for _, q := range quotes {
		if q.CreatedAt.After(weekAgo) {
			metrics.RecentLeads7d++
		}
	}

	metrics.TotalReviews, err = s.ReviewRepo.CountByVendorSlug(vendorSlug)
	if err != nil {
		return nil, err
	}
	if vendor.Rating != nil {
		metrics.AverageRating = *vendor.Rating
	}

	// Guard against division by zero: no views means a 0.0 conversion rate.
	if metrics.TotalViews > 0 {
		rate := float64(metrics.TotalLeads) * 100.0 / float64(metrics.TotalViews)
		metrics.ConversionRate = utils.RoundHalfUp(rate, 2)
	}

	return metrics, nil
}

// ComputeVendorStats derives the lighter stats block for the vendor owning the
// given email.
func (s *DefaultAnalyticsService) ComputeVendorStats(email string, now time.Time) (*models.VendorStats, error) {
	vendor, err := s.VendorRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	stats := &models.VendorStats{}
	stats.TotalViews, err = s.PageViewRepo.CountByVendorSlug(vendor.Slug)
	if err != nil {
		return nil, err
	}

	quotes, err := s.QuoteRepo.ListByVendorSlug(vendor.Slug)
	if err != nil {
		return nil, err
	}
	stats.QuoteRequests = int64(len(quotes))
	for _, q := range quotes {
		switch {
		case quote.IsInitial(q.Status):
			stats.PendingQuotes++
		case strings.ToUpper(q.Status) == models.QuoteStatusAccepted:
			stats.AcceptedQuotes++
		case strings.ToUpper(q.Status) == models.QuoteStatusCompleted:
			stats.CompletedQuotes++
		}
	}

	stats.TotalReviews, err = s.ReviewRepo.CountByVendorSlug(vendor.Slug)
	if err != nil {
		return nil, err
	}
	if vendor.Rating != nil {
		stats.AverageRating = *vendor.Rating
	}

	return stats, nil
}

// ComputePlatformTotals derives the admin dashboard summary.
func (s *DefaultAnalyticsService) ComputePlatformTotals() (*models.PlatformTotals, error) {
	totals := &models.PlatformTotals{}
	var err error
	if totals.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if totals.TotalVendors, err = s.VendorRepo.Count(); err != nil {
		return nil, err
	}
	if totals.TotalReviews, err = s.ReviewRepo.Count(); err != nil {
		return nil, err
	}
	return totals, nil
}

func vendorDisplayName(vendor *models.Vendor) string {
	if vendor.BusinessName != "" {
		return vendor.BusinessName
	}
	return vendor.StoreName
}
