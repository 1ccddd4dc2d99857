package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"staymarket/internal/domain"
	"staymarket/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	listings ListingGetter
}

func NewService(bookings BookingRepository, listings ListingGetter) *Service {
	return &Service{bookings: bookings, listings: listings}
}

// CanModify is the single ownership predicate for bookings: the guest and the
// listing's host may change or delete a booking, nobody else.
func CanModify(userID int64, b *domain.Booking) bool {
	if b.GuestID == userID {
		return true
	}
	return b.Listing != nil && b.Listing.HostID == userID
}

func (s *Service) Create(ctx context.Context, guestID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}

	l, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if !l.IsAvailable {
		return nil, ErrListingUnavailable
	}

	if req.NumGuests > l.MaxGuests {
		return nil, &CapacityExceededError{MaxGuests: l.MaxGuests}
	}

	b := &domain.Booking{
		ListingID:       l.ID,
		GuestID:         guestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       req.NumGuests,
		TotalPrice:      totalPrice(l.PricePerNight, checkIn, checkOut),
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}

	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// totalPrice is computed once at creation: nightly rate times nights,
// rounded to two decimal places. It is never recomputed on update.
func totalPrice(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	nights := checkOut.Sub(checkIn).Hours() / 24
	return math.Round(pricePerNight*nights*100) / 100
}

func (s *Service) Get(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	return s.visibleBooking(ctx, userID, bookingID)
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetVisibleToUser(ctx, userID)
}

func (s *Service) MyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByGuest(ctx, userID)
}

func (s *Service) MyHostedBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByHost(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, bookingID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanModify(userID, b) {
		return nil, ErrForbidden
	}

	if req.CheckInDate != nil {
		checkIn, err := time.Parse(dateLayout, *req.CheckInDate)
		if err != nil {
			return nil, ErrValidation
		}
		b.CheckInDate = checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := time.Parse(dateLayout, *req.CheckOutDate)
		if err != nil {
			return nil, ErrValidation
		}
		b.CheckOutDate = checkOut
	}
	if !b.CheckOutDate.After(b.CheckInDate) {
		return nil, ErrInvalidDates
	}

	if req.NumGuests != nil {
		if *req.NumGuests <= 0 {
			return nil, ErrValidation
		}
		if b.Listing != nil && *req.NumGuests > b.Listing.MaxGuests {
			return nil, &CapacityExceededError{MaxGuests: b.Listing.MaxGuests}
		}
		b.NumGuests = *req.NumGuests
	}
	if req.SpecialRequests != nil {
		b.SpecialRequests = *req.SpecialRequests
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrValidation
		}
		b.Status = status
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, userID, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanModify(userID, b) {
		return ErrForbidden
	}

	return s.bookings.Delete(ctx, bookingID)
}

// Cancel moves any non-cancelled booking to cancelled. Guest or host only.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanModify(userID, b) {
		return nil, ErrForbidden
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}
	b.Status = domain.BookingCancelled
	return b, nil
}

// Confirm moves a pending booking to confirmed. Host only.
func (s *Service) Confirm(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Listing == nil || b.Listing.HostID != userID {
		return nil, ErrForbidden
	}

	if b.Status != domain.BookingPending {
		return nil, ErrNotPending
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	b.Status = domain.BookingConfirmed
	return b, nil
}

// visibleBooking enforces read visibility: participants see the booking,
// everyone else gets a not-found.
func (s *Service) visibleBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanModify(userID, b) {
		return nil, ErrNotFound
	}
	return b, nil
}
