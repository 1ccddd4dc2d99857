package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staymarket/internal/database"
	"staymarket/internal/middleware"
	"staymarket/internal/modules/auth"
	"staymarket/internal/modules/booking"
	"staymarket/internal/modules/listing"
	"staymarket/internal/modules/review"
	jwtsvc "staymarket/internal/pkg/jwt"
	"staymarket/internal/repository"
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

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	listingHandler := listing.NewHandler(listing.NewService(listingRepo, reviewRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, listingRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, listingRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("/")
		public.Use(middleware.OptionalAuth(j))

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))

		authHandler.RegisterRoutes(public, protected)
		listingHandler.RegisterRoutes(public, protected)
		reviewHandler.RegisterRoutes(public, protected)
		bookingHandler.RegisterRoutes(protected)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
