package domain

import "time"

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyVilla     PropertyType = "villa"
	PropertyCabin     PropertyType = "cabin"
	PropertyCondo     PropertyType = "condo"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyVilla, PropertyCabin, PropertyCondo:
		return true
	}
	return false
}

type Listing struct {
	ID            int64        `json:"id"`
	HostID        int64        `json:"host_id"`
	Title         string       `json:"title" gorm:"size:200" validate:"required"`
	Description   string       `json:"description" gorm:"type:text"`
	Address       string       `json:"address" gorm:"size:500"`
	City          string       `json:"city" gorm:"size:100"`
	State         string       `json:"state" gorm:"size:100"`
	Zipcode       string       `json:"zipcode" gorm:"size:20"`
	Country       string       `json:"country" gorm:"size:100"`
	PricePerNight float64      `json:"price_per_night" validate:"required,gt=0"`
	Bedrooms      int          `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int          `json:"bathrooms" validate:"gte=0"`
	MaxGuests     int          `json:"max_guests" validate:"required,gt=0"`
	PropertyType  PropertyType `json:"property_type" gorm:"size:20"`
	Amenities     []string     `json:"amenities" gorm:"serializer:json;type:json"`
	Images        []string     `json:"images" gorm:"serializer:json;type:json"`
	IsAvailable   bool         `json:"is_available"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Host     *User     `json:"host,omitempty" gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ListingID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ListingID"`
}

// AverageRating is the arithmetic mean of the loaded reviews, 0 when there are none.
func (l *Listing) AverageRating() float64 {
	if len(l.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, rv := range l.Reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(l.Reviews))
}
