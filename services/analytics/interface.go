package analytics

import (
	"fmt"
	"time"

	pageviewRepo "vendora/database/repository/pageview"
	quoteRepo "vendora/database/repository/quote"
	reviewRepo "vendora/database/repository/review"
	userRepo "vendora/database/repository/user"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"

	"github.com/go-redis/redis/v8"
)

// AnalyticsService derives dashboard metrics from raw page-view and quote
// history. Every call recomputes from the store; nothing is cached.
type AnalyticsService interface {
	ComputeDashboard(vendorSlug string, now time.Time) (*models.DashboardMetrics, error)
	ComputeVendorStats(email string, now time.Time) (*models.VendorStats, error)
	ComputePlatformTotals() (*models.PlatformTotals, error)
	RecordView(vendorSlug, ipAddress, userAgent, referrer string, now time.Time) error
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	VendorRepo   vendorRepo.VendorRepository
	QuoteRepo    quoteRepo.QuoteRepository
	ReviewRepo   reviewRepo.ReviewRepository
	PageViewRepo pageviewRepo.PageViewRepository
	UserRepo     userRepo.UserRepository

	// DedupClient guards against counting repeat hits from the same IP within
	// the dedup window. Optional; when nil every hit is recorded.
	DedupClient *redis.Client
	DedupWindow time.Duration
}

func NewDefaultAnalyticsService(
	vendors vendorRepo.VendorRepository,
	quotes quoteRepo.QuoteRepository,
	reviews reviewRepo.ReviewRepository,
	pageViews pageviewRepo.PageViewRepository,
	users userRepo.UserRepository,
) (*DefaultAnalyticsService, error) {
	if vendors == nil || quotes == nil || reviews == nil || pageViews == nil || users == nil {
		return nil, fmt.Errorf("analytics service initialization error: one or more dependencies are nil")
	}
	return &DefaultAnalyticsService{
		VendorRepo:   vendors,
		QuoteRepo:    quotes,
		ReviewRepo:   reviews,
		PageViewRepo: pageViews,
		UserRepo:     users,
	}, nil
}
