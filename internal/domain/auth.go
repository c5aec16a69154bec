package entity

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTClaims identifies the caller. Tokens are issued by the external user
// service; this service only validates them.
type JWTClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`

	jwt.RegisteredClaims
}
