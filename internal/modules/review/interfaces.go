package review

import (
	"context"

	"staymarket/internal/domain"
)

// ReviewRepository defines the persistence surface for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetAll(ctx context.Context, limit, offset int) ([]domain.Review, int64, error)
	ExistsForListingAndReviewer(ctx context.Context, listingID, reviewerID int64) (bool, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

// ListingGetter checks the reviewed listing exists.
type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
