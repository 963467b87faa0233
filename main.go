package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/config"
	"fixify/cron"
	"fixify/database"
	adminRepoPkg "fixify/database/repository/admin"
	approvalRepoPkg "fixify/database/repository/approval"
	bookingRepoPkg "fixify/database/repository/booking"
	chatRepoPkg "fixify/database/repository/chat"
	paymentRepoPkg "fixify/database/repository/payment"
	providerRepoPkg "fixify/database/repository/provider"
	reportRepoPkg "fixify/database/repository/report"
	reviewRepoPkg "fixify/database/repository/review"
	scheduleRepoPkg "fixify/database/repository/schedule"
	serviceRepoPkg "fixify/database/repository/service"
	userRepoPkg "fixify/database/repository/user"
	"fixify/handlers"
	"fixify/routes"
	"fixify/services/admin"
	"fixify/services/booking"
	"fixify/services/chat"
	"fixify/services/payment"
	"fixify/services/provider"
	"fixify/services/report"
	"fixify/services/user"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	approvalRepo := approvalRepoPkg.NewMongoApprovalRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// Email outbox: queue for producers, background worker as consumer.
	mailQueue := cron.NewMailQueue()
	cron.InitMailWorker()

	// Chat hub plus the shared presence store.
	hub := chat.NewHub()
	go hub.Run()
	presence := chat.NewPresenceStore(utils.GetPresenceCacheClient())
	chatSvc := chat.NewChatService(chatRepo, hub, presence)

	// Services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
		Mail: mailQueue,
	}
	providerService := &provider.DefaultProviderService{
		Repo:         providerRepo,
		ScheduleRepo: scheduleRepo,
		ApprovalRepo: approvalRepo,
		ServiceRepo:  serviceRepo,
		Mail:         mailQueue,
	}
	bookingService := &booking.DefaultBookingService{
		ScheduleRepo: scheduleRepo,
		BookingRepo:  bookingRepo,
		UserRepo:     userRepo,
		ProviderRepo: providerRepo,
		ReviewRepo:   reviewRepo,
		Locker:       utils.NewRedisSlotLocker(utils.GetLockCacheClient(), 10*time.Second),
		Mail:         mailQueue,
		Notify:       chatSvc,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentRepo,
		BookingRepo: bookingRepo,
	}
	adminService := &admin.DefaultAdminService{
		Repo:         adminRepo,
		UserRepo:     userRepo,
		ProviderRepo: providerRepo,
		ApprovalRepo: approvalRepo,
		ServiceRepo:  serviceRepo,
		ReportRepo:   reportRepo,
		BookingRepo:  bookingRepo,
	}
	reportService := &report.DefaultReportService{
		Repo:         reportRepo,
		UserRepo:     userRepo,
		ProviderRepo: providerRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:     handlers.NewUserHandler(userService),
		Provider: handlers.NewProviderHandler(providerService),
		Admin:    handlers.NewAdminHandler(adminService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Payment:  handlers.NewPaymentHandler(paymentService),
		Report:   handlers.NewReportHandler(reportService),
		Chat:     handlers.NewChatHandler(hub, chatSvc),
		Storage:  handlers.NewStorageHandler(cloudinaryStorageService),
		Catalog:  handlers.NewCatalogHandler(serviceRepo, providerRepo, utils.GetCacheClient()),

		UserRepo:     userRepo,
		ProviderRepo: providerRepo,
		AdminRepo:    adminRepo,
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	hub.Stop()
	if err := mailQueue.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close mail queue: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
