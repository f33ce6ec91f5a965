package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleReviewer is the fixed role claim carried by every issued bearer token.
const RoleReviewer = "reviewer"

// ReviewerClaims is the bearer token payload: the reviewer's user ID as
// subject plus the fixed role claim.
type ReviewerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a bearer token for the given reviewer user.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := ReviewerClaims{
		Role: RoleReviewer,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a bearer token, checking the signature and the
// standard time claims. The caller still has to resolve the subject against an
// active reviewer user.
func ParseAndValidateJWT(tokenString string, secretKey string) (*ReviewerClaims, error) {
	claims := &ReviewerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
