package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// SessionClaims are the JWT claims for an employee session. The principal is
// frozen into the token at login; edits to the employee record afterwards do
// not alter an already-issued session.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	CompanyID   string `json:"companyID"`
	CompanyName string `json:"companyName"`
	Department  string `json:"department,omitempty"`
}

// Principal reconstructs the principal embedded in the claims.
func (c *SessionClaims) Principal() domain.Principal {
	return domain.Principal{
		UserID:      c.Subject,
		Email:       c.Email,
		DisplayName: c.DisplayName,
		Role:        domain.Role(c.Role),
		CompanyID:   c.CompanyID,
		CompanyName: c.CompanyName,
		Department:  c.Department,
	}
}

// GenerateSessionJWT signs a session token carrying the principal.
func GenerateSessionJWT(p domain.Principal, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
		CompanyID:   p.CompanyID,
		CompanyName: p.CompanyName,
		Department:  p.Department,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionJWT parses a session token, validates its signature and
// standard claims, and returns the embedded claims.
func ParseSessionJWT(tokenString string, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
