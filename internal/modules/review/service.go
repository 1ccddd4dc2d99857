package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staymarket/internal/domain"
	"staymarket/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	listings ListingGetter
}

func NewService(reviews ReviewRepository, listings ListingGetter) *Service {
	return &Service{reviews: reviews, listings: listings}
}

// CanModify is the single ownership predicate for reviews: only the original
// reviewer may update or delete.
func CanModify(userID int64, rv *domain.Review) bool {
	return rv.ReviewerID == userID
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Review, int64, error) {
	return s.reviews.GetAll(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// Create attributes the review to the caller. The (listing, reviewer) pair is
// unique; the storage index makes a second attempt fail deterministically even
// when two requests race past the existence check.
func (s *Service) Create(ctx context.Context, reviewerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.listings.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	exists, err := s.reviews.ExistsForListingAndReviewer(ctx, req.ListingID, reviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	rv := &domain.Review{
		ListingID:  req.ListingID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) Update(ctx context.Context, userID, reviewID int64, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanModify(userID, rv) {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrValidation
		}
		rv.Rating = *req.Rating
	}
	if req.Comment != nil {
		rv.Comment = *req.Comment
	}

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, userID, reviewID int64) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanModify(userID, rv) {
		return ErrForbidden
	}

	return s.reviews.Delete(ctx, reviewID)
}
