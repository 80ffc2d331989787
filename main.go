package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendora/config"
	"vendora/cron"
	"vendora/database"
	pageviewRepo "vendora/database/repository/pageview"
	quoteRepo "vendora/database/repository/quote"
	reviewRepo "vendora/database/repository/review"
	userRepo "vendora/database/repository/user"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/handlers"
	"vendora/middleware"
	"vendora/routes"
	"vendora/services/analytics"
	"vendora/services/identity"
	"vendora/services/quote"
	"vendora/services/review"
	"vendora/services/vendor"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitViewsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	vendors := vendorRepo.NewMongoVendorRepo()
	users := userRepo.NewMongoUserRepo()
	quotes := quoteRepo.NewMongoQuoteRepo()
	reviews := reviewRepo.NewMongoReviewRepo()
	pageViews := pageviewRepo.NewMongoPageViewRepo()

	// services.
	vendorService, err := vendor.NewDefaultVendorService(vendors)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize vendor service: %v", err)
	}
	quoteService, err := quote.NewDefaultQuoteService(quotes, vendors)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize quote service: %v", err)
	}
	reviewService, err := review.NewDefaultReviewService(reviews, vendors)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize review service: %v", err)
	}
	analyticsService, err := analytics.NewDefaultAnalyticsService(vendors, quotes, reviews, pageViews, users)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize analytics service: %v", err)
	}
	analyticsService.DedupClient = utils.GetViewsCacheClient()
	analyticsService.DedupWindow = time.Duration(config.AppConfig.ViewDedupWindowMin) * time.Minute

	identityService, err := identity.NewDefaultIdentityService(users, vendors, utils.GetAuthCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize identity service: %v", err)
	}
	if err := identityService.EnsureAdmin(config.AppConfig.AdminName, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		logger.Sugar().Fatalf("main: admin bootstrap failed: %v", err)
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		AuthCache: utils.GetAuthCacheClient(),
		Auth:      handlers.NewAuthHandler(identityService),
		Explore:   handlers.NewExploreHandler(vendorService, analyticsService),
		Quote:     handlers.NewQuoteHandler(quoteService),
		Review:    handlers.NewReviewHandler(reviewService),
		Vendor:    handlers.NewVendorHandler(vendorService),
		Dashboard: handlers.NewDashboardHandler(analyticsService),
		Admin:     handlers.NewAdminHandler(vendorService, reviewService, analyticsService, identityService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	promotionWorker := cron.StartPromotionWorker(vendorService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	promotionWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
