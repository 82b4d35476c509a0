package service

import (
	"time"
)

// Claims holds the verified content of an access token.
type Claims struct {
	// ID is the token's unique id (jti), used to revoke it before expiry.
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a given user.
	GenerateAccessToken(userID int64) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
