package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"`
	Rating    int       `json:"rating" db:"rating"` // 1..5
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateCommentInput struct {
	Text      string `json:"text" binding:"required"`
	ListingID string `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
}

type UpdateCommentInput struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}
