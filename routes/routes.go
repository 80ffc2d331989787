package routes

import (
	"net/http"
	"time"

	"vendora/handlers"
	"vendora/middleware"
	"vendora/services/identity"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the handlers and the auth cache the middleware needs.
type HandlerBundle struct {
	AuthCache *redis.Client

	Auth      *handlers.AuthHandler
	Explore   *handlers.ExploreHandler
	Quote     *handlers.QuoteHandler
	Review    *handlers.ReviewHandler
	Vendor    *handlers.VendorHandler
	Dashboard *handlers.DashboardHandler
	Admin     *handlers.AdminHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	registerHealthRoute(r)
	registerAuthRoutes(r, hb)
	registerExploreRoutes(r, hb)
	registerQuoteRoutes(r, hb)
	registerReviewRoutes(r, hb)
	registerVendorRoutes(r, hb)
	registerAdminRoutes(r, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vendora"})
	})
}

func registerAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.CustomerSignup)
		api.POST("/vendor-signup", hb.Auth.VendorSignup)
		api.POST("/login", hb.Auth.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		protected.POST("/change-password", hb.Auth.ChangePassword)
		protected.POST("/logout", hb.Auth.Logout)
	}
}

func registerExploreRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/explore")
	{
		api.GET("", hb.Explore.ListActive)
		api.GET("/:slug/profile", hb.Explore.Profile)
		api.GET("/check-slug", hb.Explore.CheckSlug)
		api.GET("/search", hb.Explore.Search)
	}
}

func registerQuoteRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		// Quote submission is a public customer action.
		api.POST("", hb.Quote.Submit)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		protected.GET("/mine", hb.Quote.CustomerQuotes)

		vendorOnly := protected.Group("")
		vendorOnly.Use(middleware.RequireRole(identity.RoleVendor))
		vendorOnly.GET("/vendor", hb.Quote.VendorQuotes)
		vendorOnly.PUT("/:quoteId/status", hb.Quote.SetStatus)
		vendorOnly.PUT("/:quoteId/respond", hb.Quote.Respond)
	}
}

func registerReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.Review.Create)
		api.GET("/vendor/:slug", hb.Review.VendorReviews)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthCache))
		protected.POST("/:reviewId/flag", hb.Review.Flag)

		vendorOnly := protected.Group("")
		vendorOnly.Use(middleware.RequireRole(identity.RoleVendor))
		vendorOnly.GET("/vendor", hb.Review.MyVendorReviews)
	}
}

func registerVendorRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/vendor")
	api.Use(middleware.JWTAuthMiddleware(hb.AuthCache), middleware.RequireRole(identity.RoleVendor))
	{
		api.GET("/profile", hb.Vendor.GetProfile)
		api.PUT("/profile", hb.Vendor.UpdateProfile)
		api.GET("/dashboard/stats", hb.Dashboard.Stats)
		api.GET("/dashboard/overview", hb.Dashboard.Overview)
	}
}

func registerAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.AuthCache), middleware.RequireRole(identity.RoleAdmin))
	{
		api.GET("/dashboard", hb.Admin.Dashboard)
		api.GET("/vendors", hb.Admin.ListVendors)
		api.PUT("/vendors/:vendorId/approve", hb.Admin.ApproveVendor)
		api.PUT("/vendors/:vendorId/reject", hb.Admin.RejectVendor)
		api.PUT("/vendors/:vendorId/suspend", hb.Admin.SuspendVendor)
		api.GET("/users", hb.Admin.ListUsers)
		api.PUT("/users/:userId/ban", hb.Admin.BanUser)
		api.PUT("/users/:userId/unban", hb.Admin.UnbanUser)
		api.GET("/reviews/flagged", hb.Admin.FlaggedReviews)
		api.PUT("/reviews/:reviewId/unflag", hb.Admin.UnflagReview)
		api.DELETE("/reviews/:reviewId", hb.Admin.DeleteReview)
	}
}
