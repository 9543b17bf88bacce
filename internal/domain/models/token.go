package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are carried by session tokens. Subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
}

// IssuedToken is a signed token with its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}
