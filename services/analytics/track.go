package analytics

import (
	"context"
	"time"

	"vendora/models"
	"vendora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordView appends a page view for a vendor profile hit. Repeat hits from the
// same IP within the dedup window count once; a redis failure degrades to
// recording the hit rather than dropping it.
func (s *DefaultAnalyticsService) RecordView(vendorSlug, ipAddress, userAgent, referrer string, now time.Time) error {
	if _, err := s.VendorRepo.GetBySlug(vendorSlug); err != nil {
		return err
	}

	if s.DedupClient != nil && ipAddress != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		key := "view:" + vendorSlug + ":" + ipAddress
		fresh, err := s.DedupClient.SetNX(ctx, key, 1, s.DedupWindow).Result()
		if err != nil {
			utils.GetLogger().Warn("view dedup check failed, recording anyway",
				zap.String("vendorSlug", vendorSlug), zap.Error(err))
		} else if !fresh {
			return nil
		}
	}

	view := &models.PageView{
		ID:         uuid.New().String(),
		VendorSlug: vendorSlug,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Referrer:   referrer,
		ViewedAt:   now,
	}
	return s.PageViewRepo.Create(view)
}
