package listing

import "staymarket/internal/domain"

type CreateListingRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	State         string   `json:"state"`
	Zipcode       string   `json:"zipcode"`
	Country       string   `json:"country" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms     int      `json:"bathrooms" binding:"gte=0"`
	MaxGuests     int      `json:"max_guests" binding:"required,gt=0"`
	PropertyType  string   `json:"property_type" binding:"required"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   *bool    `json:"is_available"`
}

// UpdateListingRequest carries partial updates; nil fields keep their value.
// PUT and PATCH share it, the Django-style full update simply sends every field.
type UpdateListingRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Zipcode       *string   `json:"zipcode"`
	Country       *string   `json:"country"`
	PricePerNight *float64  `json:"price_per_night"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	MaxGuests     *int      `json:"max_guests"`
	PropertyType  *string   `json:"property_type"`
	Amenities     *[]string `json:"amenities"`
	Images        *[]string `json:"images"`
	IsAvailable   *bool     `json:"is_available"`
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Detail is the expanded retrieve payload: the listing with its loaded
// reviews and bookings plus the derived rating fields.
type Detail struct {
	domain.Listing
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

func newDetail(l *domain.Listing) *Detail {
	return &Detail{
		Listing:       *l,
		AverageRating: l.AverageRating(),
		ReviewCount:   len(l.Reviews),
	}
}
