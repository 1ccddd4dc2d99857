package listing

import (
	"context"

	"staymarket/internal/domain"
	"staymarket/internal/repository"
)

// ListingRepository defines the persistence surface for listings.
type ListingRepository interface {
	GetAll(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error)
	GetByHost(ctx context.Context, hostID int64) ([]domain.Listing, error)
	GetAvailable(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	Create(ctx context.Context, l *domain.Listing) error
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository is the slice of the review store the listing module needs
// for the per-listing review routes.
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByListing(ctx context.Context, listingID int64) ([]domain.Review, error)
	ExistsForListingAndReviewer(ctx context.Context, listingID, reviewerID int64) (bool, error)
}
