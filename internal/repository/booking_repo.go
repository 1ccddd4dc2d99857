package repository

import (
	"context"

	"gorm.io/gorm"

	"staymarket/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).
		Omit("Listing", "Guest").
		Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Host").
		Preload("Guest").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetVisibleToUser returns bookings where the user is the guest or hosts the
// booked listing, newest first.
func (r *BookingRepository) GetVisibleToUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("bookings.guest_id = ? OR listings.host_id = ?", userID, userID).
		Preload("Listing").
		Preload("Listing.Host").
		Preload("Guest").
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Preload("Listing").
		Preload("Listing.Host").
		Preload("Guest").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetByHost returns bookings against any listing owned by the host.
func (r *BookingRepository) GetByHost(ctx context.Context, hostID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("listings.host_id = ?", hostID).
		Preload("Listing").
		Preload("Listing.Host").
		Preload("Guest").
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).
		Omit("Listing", "Guest").
		Save(b).Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}
