package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the access tokens. The registered
// Subject claim carries the numeric user ID in decimal form.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID decodes the numeric user ID from the Subject claim.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed access token for a given user.
	Generate(userID int64, email string) (string, error)

	// Validate checks the signature and expiry of a token string. It fails
	// closed: any malformed structure, signature mismatch or past expiry is an
	// error.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
