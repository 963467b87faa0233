package routes

import (
	"net/http"
	"time"

	"fixify/config"
	"fixify/handlers"
	"fixify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers customer endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/signup", hb.User.SignUp)
		api.POST("/verify-otp", hb.User.VerifyOTP)
		api.POST("/resend-otp", hb.User.ResendOTP)
		api.POST("/signin", hb.User.SignIn)
		api.POST("/google", hb.User.GoogleSignIn)
		api.POST("/refresh", hb.User.Refresh)
		api.POST("/signout", hb.User.SignOut)

		// Protected routes.
		api.Use(middleware.UserAuth(hb.UserRepo))
		api.GET("/me", hb.User.Profile)
		api.PATCH("/me", hb.User.UpdateProfile)
		api.POST("/reports", hb.Report.Create)
	}
}

// RegisterProviderRoutes registers technician endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/signup", hb.Provider.SignUp)
		api.POST("/verify-otp", hb.Provider.VerifyOTP)
		api.POST("/resend-otp", hb.Provider.ResendOTP)
		api.POST("/signin", hb.Provider.SignIn)
		api.POST("/refresh", hb.Provider.Refresh)
		api.POST("/signout", hb.Provider.SignOut)

		// Protected routes.
		api.Use(middleware.ProviderAuth(hb.ProviderRepo))
		api.GET("/me", hb.Provider.Profile)
		api.PATCH("/me", hb.Provider.UpdateProfile)
		api.POST("/approvals", hb.Provider.ApplyForApproval)
		api.POST("/schedules", hb.Provider.CreateSchedule)
		api.GET("/schedules", hb.Provider.ListSchedules)
		api.GET("/bookings", hb.Booking.ListForProvider)
		api.PATCH("/requests/:requestId", hb.Booking.DecideRequest)
		api.POST("/reports", hb.Report.Create)
	}
}

// RegisterBookingRoutes registers the customer side of the slot workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.UserAuth(hb.UserRepo))
		api.POST("/requests", hb.Booking.RequestSlot)
		api.GET("", hb.Booking.ListForUser)
		api.DELETE("/:bookingId", hb.Booking.Cancel)
		api.POST("/:bookingId/review", hb.Booking.Review)
		api.POST("/payments", hb.Payment.Save)
		api.POST("/payments/confirm", hb.Payment.Confirm)
		api.GET("/payments/:paymentId", hb.Payment.Get)
	}
}

// RegisterCatalogRoutes registers the public browse surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/services/:serviceId/providers", hb.Catalog.ListProviders)
		api.GET("/providers/:providerId/slots", hb.Booking.OpenSlots)
	}
}

// RegisterAdminRoutes registers moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/signin", hb.Admin.SignIn)
		api.POST("/refresh", hb.Admin.Refresh)
		api.POST("/signout", hb.Admin.SignOut)

		api.Use(middleware.AdminAuth(hb.AdminRepo))
		api.GET("/dashboard", hb.Admin.Dashboard)
		api.GET("/users", hb.Admin.ListUsers)
		api.PATCH("/users/:id/block", hb.Admin.SetUserBlocked)
		api.GET("/providers", hb.Admin.ListProviders)
		api.PATCH("/providers/:id/block", hb.Admin.SetProviderBlocked)
		api.GET("/approvals", hb.Admin.ListApprovals)
		api.PATCH("/approvals/:id", hb.Admin.DecideApproval)
		api.GET("/services", hb.Admin.ListServices)
		api.POST("/services", hb.Admin.CreateService)
		api.PATCH("/services/:id", hb.Admin.UpdateService)
		api.PATCH("/services/:id/active", hb.Admin.SetServiceActive)
		api.GET("/reports", hb.Admin.ListReports)
	}
}

// RegisterChatRoutes registers the websocket and notification endpoints.
// Users and providers join through role-specific subgroups so each gets
// its own block-status check.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		users := api.Group("/user")
		users.Use(middleware.UserAuth(hb.UserRepo))
		users.GET("/ws", hb.Chat.Connect)
		users.GET("/history", hb.Chat.History)
		users.GET("/notifications/unread", hb.Chat.UnreadCount)
		users.POST("/notifications/read", hb.Chat.MarkAllRead)
		users.GET("/presence", hb.Chat.PeerOnline)

		providers := api.Group("/provider")
		providers.Use(middleware.ProviderAuth(hb.ProviderRepo))
		providers.GET("/ws", hb.Chat.Connect)
		providers.GET("/history", hb.Chat.History)
		providers.GET("/notifications/unread", hb.Chat.UnreadCount)
		providers.POST("/notifications/read", hb.Chat.MarkAllRead)
		providers.GET("/presence", hb.Chat.PeerOnline)
	}
}

// RegisterStorageRoutes registers upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.UserAuth(hb.UserRepo))
		api.POST("/upload/:folder", hb.Storage.Upload)
		api.DELETE("/file", hb.Storage.Delete)
	}

	providerAPI := r.Group("/api/storage/provider")
	{
		providerAPI.Use(middleware.ProviderAuth(hb.ProviderRepo))
		providerAPI.POST("/upload/:folder", hb.Storage.Upload)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fixify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
