package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, wrong algorithms and garbage input.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired means the token was well-signed but its lifetime is over.
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents the JWT claims for Pizza Pie authentication.
//
// Tokens are stateless: a token stays valid for its full TTL even if the user
// is deleted or the admin flag changes after issuance. Routes that must see
// the live role re-check the user record instead of trusting IsAdmin here.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// GenerateToken creates a signed JWT token for the given user. The token is a
// pure function of its inputs and the signing secret; nothing is persisted.
func GenerateToken(userID string, isAdmin bool, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pizzapie",
			Audience:  jwt.ClaimStrings{"pizzapie-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token string, returning the claims
// if valid. Expiry is reported as ErrTokenExpired; every other failure mode
// collapses to ErrInvalidToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("pizzapie"), jwt.WithAudience("pizzapie-api"))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
