package repository

import (
	"context"

	"gorm.io/gorm"

	"staymarket/internal/domain"
)

type ListingFilters struct {
	Limit  int
	Offset int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetAll returns listings newest first with the total count for pagination.
func (r *ListingRepository) GetAll(ctx context.Context, f ListingFilters) ([]domain.Listing, int64, error) {
	var listings []domain.Listing
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Listing{})
	q.Count(&total)

	err := q.
		Preload("Host").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&listings).Error

	return listings, total, err
}

func (r *ListingRepository) GetByHost(ctx context.Context, hostID int64) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Preload("Host").
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepository) GetAvailable(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Preload("Host").
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// GetByID loads the listing with host, reviews and bookings for the detail view.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Host").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Reviews.Reviewer").
		Preload("Bookings", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Bookings.Guest").
		First(&listing, id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).
		Omit("Host", "Reviews", "Bookings").
		Save(listing).Error
}

// Delete removes the listing and its dependent bookings and reviews. The FK
// constraints cascade on postgres; the association delete keeps sqlite
// databases without foreign_keys pragma consistent too.
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Select("Reviews", "Bookings").
		Delete(&domain.Listing{ID: id}).Error
}
