package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/copypasta/copypasta-server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): a random identifier, used for logout revocation
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer, tokenDuration and signKey are required: returns an error if any
// of them is empty or zero. userID is not checked.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to UserID: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}
