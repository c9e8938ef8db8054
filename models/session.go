package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry,
// jti, etc).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature), the opaque value that is actually placed in
// the session cookie. UserID is a cached, parsed copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
