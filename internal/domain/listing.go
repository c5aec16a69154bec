package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a published trade item. The exchange workflow only ever touches
// AuthorID and StateID; everything else is listing-facing content.
type Listing struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`
	StateID     int       `json:"state_id" db:"state_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateListingInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"required"`
}

type UpdateListingInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	StateID     int    `json:"state_id"`
}

type ListingFilter struct {
	Keyword string
	Limit   int
	Offset  int
}
