package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"glambook/internal/database"
	"glambook/internal/domain"
	"glambook/internal/middleware"
	"glambook/internal/modules/auth"
	"glambook/internal/modules/booking"
	"glambook/internal/modules/catalog"
	"glambook/internal/modules/notification"
	"glambook/internal/modules/schedule"
	"glambook/internal/modules/settings"
	"glambook/internal/pkg/clock"
	jwtsvc "glambook/internal/pkg/jwt"
	"glambook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	tz := os.Getenv("DEFAULT_TIMEZONE")
	if tz == "" {
		tz = "Asia/Almaty"
	}
	defaultLoc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("bad DEFAULT_TIMEZONE %q: %v", tz, err)
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Artist{},
		&domain.Service{},
		&domain.AvailabilityWindow{},
		&domain.TimeOffRange{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := database.EnsureBookingConstraints(db); err != nil {
		log.Fatal("booking constraints failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	windowRepo := repository.NewAvailabilityWindowRepository(db)
	timeOffRepo := repository.NewTimeOffRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	clk := clock.Real()

	hub := notification.NewHub()
	defer hub.Close()
	notifier := notification.NewService(hub)

	authService := auth.NewService(userRepo, artistRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(artistRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	scheduleService := schedule.NewService(windowRepo, timeOffRepo, bookingRepo, artistRepo, clk, defaultLoc)
	scheduleHandler := schedule.NewHandler(scheduleService)

	bookingService := booking.NewService(bookingRepo, artistRepo, notifier, clk, defaultLoc)
	bookingHandler := booking.NewHandler(bookingService)

	settingsService := settings.NewService(windowRepo, timeOffRepo, artistRepo)
	settingsHandler := settings.NewHandler(settingsService)

	notificationHandler := notification.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		scheduleHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
