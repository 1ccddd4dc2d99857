package repository

import (
	"context"

	"gorm.io/gorm"

	"staymarket/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).
		Omit("Listing", "Reviewer").
		Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		First(&rv, id).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Review, int64, error) {
	var reviews []domain.Review
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Review{})
	q.Count(&total)

	err := q.
		Preload("Reviewer").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error

	return reviews, total, err
}

func (r *ReviewRepository) GetByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Preload("Reviewer").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ExistsForListingAndReviewer(ctx context.Context, listingID, reviewerID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("listing_id = ? AND reviewer_id = ?", listingID, reviewerID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).
		Omit("Listing", "Reviewer").
		Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}
