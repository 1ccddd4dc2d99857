package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"staymarket/internal/database"
	"staymarket/internal/domain"
)

var cities = [][3]string{
	{"New York", "NY", "USA"},
	{"Los Angeles", "CA", "USA"},
	{"Chicago", "IL", "USA"},
	{"Miami", "FL", "USA"},
	{"San Francisco", "CA", "USA"},
	{"Paris", "Île-de-France", "France"},
	{"London", "England", "UK"},
	{"Tokyo", "Tokyo", "Japan"},
	{"Sydney", "NSW", "Australia"},
	{"Toronto", "ON", "Canada"},
}

var propertyTypes = []domain.PropertyType{
	domain.PropertyApartment,
	domain.PropertyHouse,
	domain.PropertyVilla,
	domain.PropertyCabin,
	domain.PropertyCondo,
}

var amenitySets = [][]string{
	{"WiFi", "Kitchen", "Free parking"},
	{"WiFi", "Kitchen", "Pool", "Gym"},
	{"WiFi", "Kitchen", "Balcony", "Air conditioning"},
	{"WiFi", "Kitchen", "Garden", "BBQ"},
	{"WiFi", "Kitchen", "Hot tub", "Mountain view"},
	{"WiFi", "Kitchen", "Beach access", "Ocean view"},
	{"WiFi", "Kitchen", "Fireplace", "Ski storage"},
	{"WiFi", "Kitchen", "Workspace", "Coffee maker"},
}

var streets = []string{"Main St", "Oak Ave", "Pine Rd", "Elm St"}

var comments = []string{
	"Great place to stay! Highly recommended.",
	"Clean and comfortable. Perfect location.",
	"Amazing views and excellent amenities.",
	"Good value for money. Would stay again.",
	"Nice property but could use some updates.",
	"Fantastic experience! The host was very helpful.",
	"Beautiful property with everything we needed.",
	"Peaceful location with great amenities.",
	"Excellent communication with the host.",
	"Wonderful stay, exceeded our expectations.",
}

var specialRequests = []string{
	"", "Early check-in if possible", "Late check-out requested",
	"Extra towels needed", "Quiet room preferred",
}

var bookingStatuses = []domain.BookingStatus{
	domain.BookingPending,
	domain.BookingConfirmed,
	domain.BookingCompleted,
	domain.BookingCancelled,
}

func main() {
	userCount := flag.Int("users", 5, "number of users to create")
	listingCount := flag.Int("listings", 20, "number of listings to create")
	bookingCount := flag.Int("bookings", 30, "number of bookings to attempt")
	reviewCount := flag.Int("reviews", 50, "number of reviews to attempt")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staymarket.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// wipe in FK-safe order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users := make([]domain.User, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		u := domain.User{
			Username:     fmt.Sprintf("user%d", i+1),
			Email:        fmt.Sprintf("user%d@example.com", i+1),
			PasswordHash: string(hash),
			FirstName:    fmt.Sprintf("User%d", i+1),
			LastName:     fmt.Sprintf("LastName%d", i+1),
		}
		db.Create(&u)
		users = append(users, u)
		log.Println("Created user:", u.Username)
	}

	log.Println("Creating listings...")
	listings := make([]domain.Listing, 0, *listingCount)
	for i := 0; i < *listingCount; i++ {
		city := cities[rand.Intn(len(cities))]
		pt := propertyTypes[rand.Intn(len(propertyTypes))]
		host := users[rand.Intn(len(users))]

		l := domain.Listing{
			HostID:        host.ID,
			Title:         fmt.Sprintf("Beautiful %s in %s", pt, city[0]),
			Description:   fmt.Sprintf("Stunning %s located in the heart of %s. Perfect for your next vacation with all the amenities you need.", pt, city[0]),
			Address:       fmt.Sprintf("%d %s", 100+rand.Intn(9900), streets[rand.Intn(len(streets))]),
			City:          city[0],
			State:         city[1],
			Zipcode:       fmt.Sprintf("%05d", 10000+rand.Intn(90000)),
			Country:       city[2],
			PricePerNight: float64(50 + rand.Intn(451)),
			Bedrooms:      1 + rand.Intn(5),
			Bathrooms:     1 + rand.Intn(4),
			MaxGuests:     2 + rand.Intn(11),
			PropertyType:  pt,
			Amenities:     amenitySets[rand.Intn(len(amenitySets))],
			Images: []string{
				fmt.Sprintf("https://example.com/images/%s_%d_1.jpg", pt, i+1),
				fmt.Sprintf("https://example.com/images/%s_%d_2.jpg", pt, i+1),
			},
			IsAvailable: rand.Intn(4) != 0, // 75% available
		}
		db.Create(&l)
		listings = append(listings, l)
		log.Println("Created listing:", l.Title)
	}

	log.Println("Creating bookings...")
	created := 0
	for i := 0; i < *bookingCount; i++ {
		l := listings[rand.Intn(len(listings))]
		guest := users[rand.Intn(len(users))]
		if guest.ID == l.HostID {
			continue
		}

		checkIn := time.Now().AddDate(0, 0, 1+rand.Intn(365)).Truncate(24 * time.Hour)
		nights := 1 + rand.Intn(14)
		checkOut := checkIn.AddDate(0, 0, nights)

		b := domain.Booking{
			ListingID:       l.ID,
			GuestID:         guest.ID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumGuests:       1 + rand.Intn(l.MaxGuests),
			TotalPrice:      math.Round(l.PricePerNight*float64(nights)*100) / 100,
			Status:          bookingStatuses[rand.Intn(len(bookingStatuses))],
			SpecialRequests: specialRequests[rand.Intn(len(specialRequests))],
		}
		db.Create(&b)
		created++
	}
	log.Printf("Created %d bookings", created)

	log.Println("Creating reviews...")
	seen := make(map[[2]int64]bool)
	reviewsCreated := 0
	for i := 0; i < *reviewCount; i++ {
		l := listings[rand.Intn(len(listings))]
		reviewer := users[rand.Intn(len(users))]
		if reviewer.ID == l.HostID {
			continue
		}
		key := [2]int64{l.ID, reviewer.ID}
		if seen[key] {
			continue
		}
		seen[key] = true

		rv := domain.Review{
			ListingID:  l.ID,
			ReviewerID: reviewer.ID,
			Rating:     1 + rand.Intn(5),
			Comment:    comments[rand.Intn(len(comments))],
		}
		db.Create(&rv)
		reviewsCreated++
	}
	log.Printf("Created %d reviews", reviewsCreated)

	log.Printf("Seeding done: %d users, %d listings, %d bookings, %d reviews",
		len(users), len(listings), created, reviewsCreated)
}
