package listing

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staymarket/internal/domain"
	"staymarket/internal/pkg/validator"
	"staymarket/internal/repository"
)

type Service struct {
	listings ListingRepository
	reviews  ReviewRepository
}

func NewService(listings ListingRepository, reviews ReviewRepository) *Service {
	return &Service{listings: listings, reviews: reviews}
}

// CanModify is the single ownership predicate for listings: only the host
// may update or delete.
func CanModify(userID int64, l *domain.Listing) bool {
	return l.HostID == userID
}

func (s *Service) List(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error) {
	return s.listings.GetAll(ctx, f)
}

func (s *Service) Available(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.GetAvailable(ctx)
}

func (s *Service) MyListings(ctx context.Context, userID int64) ([]domain.Listing, error) {
	return s.listings.GetByHost(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return newDetail(l), nil
}

func (s *Service) Create(ctx context.Context, hostID int64, req CreateListingRequest) (*domain.Listing, error) {
	if !domain.PropertyType(req.PropertyType).Valid() {
		return nil, ErrValidation
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	l := &domain.Listing{
		HostID:        hostID,
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Zipcode:       req.Zipcode,
		Country:       req.Country,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		PropertyType:  domain.PropertyType(req.PropertyType),
		Amenities:     req.Amenities,
		Images:        req.Images,
		IsAvailable:   available,
	}

	if fields := validator.Validate(l); fields != nil {
		return nil, ErrValidation
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, userID, listingID int64, req UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanModify(userID, l) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.City != nil {
		l.City = *req.City
	}
	if req.State != nil {
		l.State = *req.State
	}
	if req.Zipcode != nil {
		l.Zipcode = *req.Zipcode
	}
	if req.Country != nil {
		l.Country = *req.Country
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrValidation
		}
		l.PricePerNight = *req.PricePerNight
	}
	if req.Bedrooms != nil {
		if *req.Bedrooms < 0 {
			return nil, ErrValidation
		}
		l.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		if *req.Bathrooms < 0 {
			return nil, ErrValidation
		}
		l.Bathrooms = *req.Bathrooms
	}
	if req.MaxGuests != nil {
		if *req.MaxGuests <= 0 {
			return nil, ErrValidation
		}
		l.MaxGuests = *req.MaxGuests
	}
	if req.PropertyType != nil {
		if !domain.PropertyType(*req.PropertyType).Valid() {
			return nil, ErrValidation
		}
		l.PropertyType = domain.PropertyType(*req.PropertyType)
	}
	if req.Amenities != nil {
		l.Amenities = *req.Amenities
	}
	if req.Images != nil {
		l.Images = *req.Images
	}
	if req.IsAvailable != nil {
		l.IsAvailable = *req.IsAvailable
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, userID, listingID int64) error {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanModify(userID, l) {
		return ErrForbidden
	}

	return s.listings.Delete(ctx, listingID)
}

func (s *Service) Reviews(ctx context.Context, listingID int64) ([]domain.Review, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.reviews.GetByListing(ctx, listingID)
}

// AddReview creates a review attributed to the caller for this listing.
// A second review from the same user fails, both on the pre-check and on the
// unique index underneath it.
func (s *Service) AddReview(ctx context.Context, reviewerID, listingID int64, req AddReviewRequest) (*domain.Review, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.reviews.ExistsForListingAndReviewer(ctx, listingID, reviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		ListingID:  listingID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}
