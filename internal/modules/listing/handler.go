package listing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staymarket/internal/pkg/response"
	"staymarket/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/listings", h.List)
	public.GET("/listings/available", h.Available)
	public.GET("/listings/:id", h.Get)
	public.GET("/listings/:id/reviews", h.Reviews)

	protected.POST("/listings", h.Create)
	protected.PUT("/listings/:id", h.Update)
	protected.PATCH("/listings/:id", h.Update)
	protected.DELETE("/listings/:id", h.Delete)
	protected.POST("/listings/:id/add_review", h.AddReview)
	protected.GET("/listings/my_listings", h.MyListings)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ListingFilters

	f.Limit = 20
	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= 100 {
			f.Limit = val
		}
	}

	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	listings, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load listings")
		return
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit
	response.Success(c, http.StatusOK, gin.H{
		"listings": listings,
		"pagination": gin.H{
			"page":        (f.Offset / f.Limit) + 1,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) Available(c *gin.Context) {
	listings, err := h.svc.Available(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listings": listings})
}

func (h *Handler) MyListings(c *gin.Context) {
	listings, err := h.svc.MyListings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listings": listings})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listing": detail})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"listing": l})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.svc.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Reviews(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	reviews, err := h.svc.Reviews(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) AddReview(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.svc.AddReview(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only modify your own listings")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing data")
	case ErrAlreadyReviewed:
		response.Error(c, http.StatusBadRequest, "ALREADY_REVIEWED", "You have already reviewed this listing")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
