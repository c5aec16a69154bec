package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Exchange is a proposed or in-progress two-listing barter between two users.
type Exchange struct {
	ID                    uuid.UUID    `json:"id" db:"id"`
	RequestedListingID    uuid.UUID    `json:"requested_listing_id" db:"requested_listing_id"`
	OfferedListingID      uuid.UUID    `json:"offered_listing_id" db:"offered_listing_id"`
	RequesterID           uuid.UUID    `json:"requester_id" db:"requester_id"`
	OwnerID               uuid.UUID    `json:"owner_id" db:"owner_id"`
	Status                string       `json:"status" db:"status"` // pending, accepted, rejected, cancelled
	RequesterConfirmation string       `json:"requester_confirmation" db:"requester_confirmation"`
	OwnerConfirmation     string       `json:"owner_confirmation" db:"owner_confirmation"`
	CreatedAt             time.Time    `json:"created_at" db:"created_at"`
	RespondedAt           sql.NullTime `json:"responded_at" db:"responded_at"`
}

// ExchangeStatus constants
const (
	ExchangeStatusPending   = "pending"
	ExchangeStatusAccepted  = "accepted"
	ExchangeStatusRejected  = "rejected"
	ExchangeStatusCancelled = "cancelled"
)

// Confirmation constants (meaningful only while status is accepted)
const (
	ConfirmationPending   = "pending"
	ConfirmationConfirmed = "confirmed"
	ConfirmationReverted  = "reverted"
)

// IsParticipant reports whether userID is one of the two trading parties.
func (e *Exchange) IsParticipant(userID uuid.UUID) bool {
	return e.RequesterID == userID || e.OwnerID == userID
}

// FullyConfirmed reports whether the trade is finalized. There is no stored
// "approved" status; full approval is derived from the two confirmation flags.
func (e *Exchange) FullyConfirmed() bool {
	return e.Status == ExchangeStatusAccepted &&
		e.RequesterConfirmation == ConfirmationConfirmed &&
		e.OwnerConfirmation == ConfirmationConfirmed
}

type CreateExchangeInput struct {
	RequestedListingID string `json:"requested_listing_id" binding:"required"`
	OfferedListingID   string `json:"offered_listing_id" binding:"required"`
}

// ExchangeResponse is the participant-facing projection of an Exchange.
type ExchangeResponse struct {
	ID                    uuid.UUID  `json:"id"`
	RequestedListing      *Listing   `json:"requested_listing"`
	OfferedListing        *Listing   `json:"offered_listing"`
	RequesterID           uuid.UUID  `json:"requester_id"`
	OwnerID               uuid.UUID  `json:"owner_id"`
	RequesterLabel        string     `json:"requester_label"`
	OwnerLabel            string     `json:"owner_label"`
	Status                string     `json:"status"`
	RequesterConfirmation string     `json:"requester_confirmation"`
	OwnerConfirmation     string     `json:"owner_confirmation"`
	CreatedAt             time.Time  `json:"created_at"`
	RespondedAt           *time.Time `json:"responded_at,omitempty"`
}
