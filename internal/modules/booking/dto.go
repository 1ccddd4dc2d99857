package booking

type CreateBookingRequest struct {
	ListingID       int64  `json:"listing_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumGuests       int    `json:"num_guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateBookingRequest carries partial updates; nil fields keep their value.
// The total price is never part of it, it stays as computed at creation.
type UpdateBookingRequest struct {
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	NumGuests       *int    `json:"num_guests"`
	SpecialRequests *string `json:"special_requests"`
	Status          *string `json:"status"`
}
