package cron

import (
	"time"

	"vendora/services/vendor"
	"vendora/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartPromotionWorker runs the daily promotion-expiry sweep at 03:00.
func StartPromotionWorker(vendorSvc vendor.VendorService) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		cleared, err := vendorSvc.ExpirePromotions(time.Now())
		if err != nil {
			logger.Error("promotion sweep failed", zap.Error(err))
			return
		}
		logger.Info("promotion sweep finished", zap.Int64("cleared", cleared))
	}); err != nil {
		logger.Fatal("failed to schedule promotion sweep", zap.Error(err))
	}

	c.Start()
	logger.Info("promotion worker started")
	return c
}
