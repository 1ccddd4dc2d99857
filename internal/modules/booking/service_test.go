package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"staymarket/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetVisibleToUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByHost(ctx context.Context, hostID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockListingGetter struct {
	mock.Mock
}

func (m *MockListingGetter) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:            10,
		HostID:        1,
		Title:         "Beautiful Villa in Miami",
		PricePerNight: 100.00,
		MaxGuests:     10,
		IsAvailable:   true,
	}
}

func TestService_Create_ComputesTotalPrice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingGetter)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(testListing(), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(mockBookings, mockListings)

	b, err := svc.Create(context.Background(), 2, CreateBookingRequest{
		ListingID:    10,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-13",
		NumGuests:    4,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 300.00, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(2), b.GuestID)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_RejectsBadDateOrder(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockListingGetter))

	for _, tc := range []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"equal dates", "2026-09-10", "2026-09-10"},
		{"check-out before check-in", "2026-09-10", "2026-09-08"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 2, CreateBookingRequest{
				ListingID:    10,
				CheckInDate:  tc.checkIn,
				CheckOutDate: tc.checkOut,
				NumGuests:    2,
			})
			assert.ErrorIs(t, err, ErrInvalidDates)
		})
	}
}

func TestService_Create_RejectsUnknownListing(t *testing.T) {
	mockListings := new(MockListingGetter)
	mockListings.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockBookingRepository), mockListings)

	_, err := svc.Create(context.Background(), 2, CreateBookingRequest{
		ListingID:    77,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		NumGuests:    2,
	})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_Create_RejectsUnavailableListing(t *testing.T) {
	l := testListing()
	l.IsAvailable = false

	mockListings := new(MockListingGetter)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(l, nil)

	svc := NewService(new(MockBookingRepository), mockListings)

	_, err := svc.Create(context.Background(), 2, CreateBookingRequest{
		ListingID:    10,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		NumGuests:    2,
	})
	assert.ErrorIs(t, err, ErrListingUnavailable)
}

func TestService_Create_RejectsOverCapacityNamingMax(t *testing.T) {
	mockListings := new(MockListingGetter)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(testListing(), nil)

	svc := NewService(new(MockBookingRepository), mockListings)

	_, err := svc.Create(context.Background(), 2, CreateBookingRequest{
		ListingID:    10,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		NumGuests:    15,
	})

	var capErr *CapacityExceededError
	assert.True(t, errors.As(err, &capErr))
	assert.Equal(t, 10, capErr.MaxGuests)
	assert.Contains(t, capErr.Error(), "10")
}

func TestService_Update_DoesNotRecomputeTotalPrice(t *testing.T) {
	b := &domain.Booking{
		ID:           999,
		ListingID:    10,
		GuestID:      2,
		CheckInDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		NumGuests:    4,
		TotalPrice:   300.00,
		Status:       domain.BookingPending,
		Listing:      testListing(),
	}

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(b, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(mockBookings, new(MockListingGetter))

	checkOut := "2026-09-20"
	updated, err := svc.Update(context.Background(), 2, 999, UpdateBookingRequest{
		CheckOutDate: &checkOut,
	})

	assert.NoError(t, err)
	assert.Equal(t, 300.00, updated.TotalPrice)
}

func TestService_Update_RejectsOutsider(t *testing.T) {
	b := &domain.Booking{ID: 999, GuestID: 2, Listing: testListing()}

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(b, nil)

	svc := NewService(mockBookings, new(MockListingGetter))

	guests := 3
	_, err := svc.Update(context.Background(), 42, 999, UpdateBookingRequest{NumGuests: &guests})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Cancel(t *testing.T) {
	newBooking := func(status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{ID: 999, GuestID: 2, Status: status, Listing: testListing()}
	}

	t.Run("guest cancels pending booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingPending), nil)
		mockBookings.On("UpdateStatus", mock.Anything, int64(999), domain.BookingCancelled).Return(nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		b, err := svc.Cancel(context.Background(), 2, 999)

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingCancelled, b.Status)
	})

	t.Run("host cancels confirmed booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingConfirmed), nil)
		mockBookings.On("UpdateStatus", mock.Anything, int64(999), domain.BookingCancelled).Return(nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		_, err := svc.Cancel(context.Background(), 1, 999)

		assert.NoError(t, err)
	})

	t.Run("already cancelled", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingCancelled), nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		_, err := svc.Cancel(context.Background(), 2, 999)

		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("outsider rejected", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingPending), nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		_, err := svc.Cancel(context.Background(), 42, 999)

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestService_Confirm(t *testing.T) {
	newBooking := func(status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{ID: 999, GuestID: 2, Status: status, Listing: testListing()}
	}

	t.Run("host confirms pending booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingPending), nil)
		mockBookings.On("UpdateStatus", mock.Anything, int64(999), domain.BookingConfirmed).Return(nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		b, err := svc.Confirm(context.Background(), 1, 999)

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingConfirmed, b.Status)
	})

	t.Run("guest may not confirm", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingPending), nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		_, err := svc.Confirm(context.Background(), 2, 999)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("already confirmed", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("GetByID", mock.Anything, int64(999)).Return(newBooking(domain.BookingConfirmed), nil)

		svc := NewService(mockBookings, new(MockListingGetter))
		_, err := svc.Confirm(context.Background(), 1, 999)

		assert.ErrorIs(t, err, ErrNotPending)
	})
}

func TestService_Get_HidesBookingFromOutsiders(t *testing.T) {
	b := &domain.Booking{ID: 999, GuestID: 2, Listing: testListing()}

	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(b, nil)

	svc := NewService(mockBookings, new(MockListingGetter))

	_, err := svc.Get(context.Background(), 42, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(context.Background(), 2, 999)
	assert.NoError(t, err)
	assert.Equal(t, int64(999), got.ID)
}
