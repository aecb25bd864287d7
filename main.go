package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"booking-backend/config"
	"booking-backend/controllers"
	"booking-backend/events"
	"booking-backend/repositories"
	"booking-backend/routes"
	"booking-backend/services"
	"booking-backend/utils"
)

func main() {
	// Load .env (optional)
	envLoadErr := godotenv.Load()

	utils.InitializeLogger()
	log := utils.GetLogger()
	defer log.Sync()

	if envLoadErr != nil {
		log.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Info("database connection established, migrations applied")

	// Optional booking-event publisher; the admission path works
	// without a broker.
	var publisher *events.Publisher
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		p, err := events.NewPublisher(amqpURL, "booking.events")
		if err != nil {
			log.Warn("event publisher disabled", zap.Error(err))
		} else {
			publisher = p
			defer publisher.Close()
			log.Info("booking event publisher connected")
		}
	}

	// Initialize services
	enrollmentService := services.NewEnrollmentService(db)
	ticketService := services.NewTicketService(db)
	roomService := services.NewRoomService(db)
	bookingRepository := repositories.NewBookingRepository(db)
	bookingService := services.NewBookingService(
		enrollmentService, ticketService, roomService, bookingRepository, publisher)
	hotelService := services.NewHotelService(db, enrollmentService, ticketService)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService)
	hotelController := controllers.NewHotelController(hotelService)

	// Build router
	router := routes.SetupRouter(bookingController, hotelController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe()", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then shut down with a deadline.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped gracefully")
}
