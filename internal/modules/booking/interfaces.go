package booking

import (
	"context"

	"staymarket/internal/domain"
)

// BookingRepository defines the persistence surface for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetVisibleToUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error)
	GetByHost(ctx context.Context, hostID int64) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// ListingGetter is the slice of the listing store booking creation needs.
type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
