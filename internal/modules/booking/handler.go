package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staymarket/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// All booking routes require authentication.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/bookings", h.List)
	protected.POST("/bookings", h.Create)
	protected.GET("/bookings/my_bookings", h.MyBookings)
	protected.GET("/bookings/my_hosted_bookings", h.MyHostedBookings)
	protected.GET("/bookings/:id", h.Get)
	protected.PUT("/bookings/:id", h.Update)
	protected.PATCH("/bookings/:id", h.Update)
	protected.DELETE("/bookings/:id", h.Delete)
	protected.POST("/bookings/:id/cancel", h.Cancel)
	protected.POST("/bookings/:id/confirm", h.Confirm)
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.svc.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.svc.MyBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) MyHostedBookings(c *gin.Context) {
	bookings, err := h.svc.MyHostedBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.svc.Get(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.svc.Cancel(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.svc.Confirm(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var capErr *CapacityExceededError
	if errors.As(err, &capErr) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Maximum "+strconv.Itoa(capErr.MaxGuests)+" guests allowed")
		return
	}

	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own bookings")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
	case ErrInvalidDates:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Check-out date must be after check-in date")
	case ErrListingNotFound:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Listing not found")
	case ErrListingUnavailable:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "This listing is not available")
	case ErrAlreadyCancelled:
		response.Error(c, http.StatusBadRequest, "STATE_CONFLICT", "Booking is already cancelled")
	case ErrNotPending:
		response.Error(c, http.StatusBadRequest, "STATE_CONFLICT", "Only pending bookings can be confirmed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
