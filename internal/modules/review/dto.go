package review

type CreateReviewRequest struct {
	ListingID int64  `json:"listing_id" binding:"required,gt=0"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

// UpdateReviewRequest carries partial updates; nil fields keep their value.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
