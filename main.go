// File: dormhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dormhub/config"
	"dormhub/cron"
	"dormhub/database"
	inquiryRepoPkg "dormhub/database/repository/inquiry"
	reservationRepoPkg "dormhub/database/repository/reservation"
	roomRepoPkg "dormhub/database/repository/room"
	userRepoPkg "dormhub/database/repository/user"
	"dormhub/handlers"
	"dormhub/middleware"
	"dormhub/routes"
	"dormhub/services/inquiry"
	"dormhub/services/notification"
	"dormhub/services/reservation"
	"dormhub/services/room"
	"dormhub/services/user"
	"dormhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	inquiryRepo := inquiryRepoPkg.NewMongoInquiryRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	handlers.SetUserService(userService)

	notificationService := &notification.DefaultNotificationService{Users: userRepo}

	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	reservationService := &reservation.DefaultReservationService{
		Repo:      reservationRepo,
		RoomRepo:  roomRepo,
		Notifier:  notificationService,
		Reminders: reminderClient,
	}

	roomService := &room.DefaultRoomService{
		Repo:  roomRepo,
		Cache: utils.GetCacheClient(),
	}

	inquiryService := &inquiry.DefaultInquiryService{Repo: inquiryRepo}

	// handlers.
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)
	roomHandler := handlers.NewRoomHandler(roomService, logger)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, logger)
	storageHandler := handlers.NewStorageHandler(storageService, logger)
	adminHandler := handlers.NewAdminHandler(reservationService, userService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		// Room endpoints.
		ListRoomsHandler:       roomHandler.ListRooms,
		GetRoomHandler:         roomHandler.GetRoom,
		GetAvailabilityHandler: roomHandler.GetAvailability,
		CreateRoomHandler:      roomHandler.CreateRoom,
		UpdateRoomHandler:      roomHandler.UpdateRoom,
		DeleteRoomHandler:      roomHandler.DeleteRoom,

		// Reservation endpoints.
		CreateReservationHandler:  reservationHandler.CreateReservation,
		ListMyReservationsHandler: reservationHandler.ListMyReservations,
		GetReservationHandler:     reservationHandler.GetReservation,
		GetProgressHandler:        reservationHandler.GetProgress,
		ScheduleVisitHandler:      reservationHandler.ScheduleVisit,
		SubmitApplicationHandler:  reservationHandler.SubmitApplication,
		SubmitPaymentHandler:      reservationHandler.SubmitPayment,
		CancelReservationHandler:  reservationHandler.CancelReservation,

		// Inquiry endpoints.
		SubmitInquiryHandler:  inquiryHandler.SubmitInquiry,
		ListInquiriesHandler:  inquiryHandler.ListInquiries,
		ResolveInquiryHandler: inquiryHandler.ResolveInquiry,
		DeleteInquiryHandler:  inquiryHandler.DeleteInquiry,

		// Profile endpoints.
		GetProfileHandler:    handlers.GetProfileHandler,
		UpdateProfileHandler: handlers.UpdateProfileHandler,

		// Storage endpoints.
		UploadPaymentProofHandler: storageHandler.UploadPaymentProof,
		UploadRoomPhotoHandler:    storageHandler.UploadRoomPhoto,

		// Admin endpoints.
		Admin: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background visit reminder worker. The repo is handed in directly so
	// a reservation deleted before delivery reads as nil and gets skipped.
	cron.InitReminderWorker(reservationRepo, notificationService)

	// Periodic dependency health snapshots for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
