package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/driventix/service-hotel/internal/application"
	"github.com/driventix/service-hotel/internal/cache"
	"github.com/driventix/service-hotel/internal/config"
	hotelEvents "github.com/driventix/service-hotel/internal/events"
	"github.com/driventix/service-hotel/internal/handler"
	"github.com/driventix/service-hotel/internal/platform/auth"
	"github.com/driventix/service-hotel/internal/platform/database"
	"github.com/driventix/service-hotel/internal/platform/health"
	"github.com/driventix/service-hotel/internal/platform/kafka"
	"github.com/driventix/service-hotel/internal/platform/logger"
	"github.com/driventix/service-hotel/internal/platform/middleware"
	"github.com/driventix/service-hotel/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-hotel")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-hotel",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	dbConfig := database.PostgresConfig{
		Host:     cfg.DBConfig.Host,
		Port:     cfg.DBConfig.Port,
		User:     cfg.DBConfig.User,
		Password: cfg.DBConfig.Password,
		DBName:   cfg.DBConfig.DBName,
		SSLMode:  cfg.DBConfig.SSLMode,
	}
	db, err := database.Connect(dbConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.HotelModel{},
			&repository.RoomModel{},
			&repository.EnrollmentModel{},
			&repository.TicketTypeModel{},
			&repository.TicketModel{},
			&repository.BookingModel{},
			&repository.SessionModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		dbURL := dbConfig.DatabaseURL()
		if err := database.RunMigrations(dbURL, "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, 15*time.Minute)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize redis cache
	hotelCache := cache.NewRedisCache(cfg.RedisConfig, time.Duration(cfg.HotelsCacheTTLSecs)*time.Second)
	defer func() { _ = hotelCache.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)
	hotelRepo := repository.NewGormHotelRepository(db)
	enrollmentRepo := repository.NewGormEnrollmentRepository(db)
	ticketRepo := repository.NewGormTicketRepository(db)
	sessionRepo := repository.NewGormSessionRepository(db)

	// Initialize application services
	eligibilitySvc := application.NewEligibilityService(enrollmentRepo, ticketRepo, log)
	bookingSvc := application.NewBookingService(bookingRepo, roomRepo, eligibilitySvc, kafkaProducer, log)
	hotelSvc := application.NewHotelService(hotelRepo, eligibilitySvc, hotelCache, log)
	ticketSvc := application.NewTicketService(ticketRepo, log)

	// Initialize and start payment event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "hotel-service"
	paymentConsumer := hotelEvents.NewPaymentEventConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		ticketSvc,
		log,
	)
	defer func() { _ = paymentConsumer.Close() }()

	go func() {
		log.Info("starting payment event consumer")
		if err := paymentConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("payment event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	hotelHandler := handler.NewHotelHandler(hotelSvc)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-hotel")
	healthHandler.RegisterRoutes(router)

	// Register routes
	authMW := middleware.AuthMiddleware(jwtManager, sessionRepo)
	bookingHandler.RegisterRoutes(&router.RouterGroup, authMW)
	hotelHandler.RegisterRoutes(&router.RouterGroup, authMW)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-hotel...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-hotel stopped")
}
