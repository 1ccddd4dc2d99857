package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	ListingID  int64     `json:"listing_id" gorm:"uniqueIndex:idx_one_review_per_reviewer" validate:"required"`
	ReviewerID int64     `json:"reviewer_id" gorm:"uniqueIndex:idx_one_review_per_reviewer"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Listing  *Listing `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Reviewer *User    `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}
