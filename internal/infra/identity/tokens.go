package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// Tokens issues and parses the HS256 session token kept in the session cookie.
type Tokens struct {
	Secret []byte
	TTL    time.Duration
	Issuer string

	now func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{Secret: []byte(secret), TTL: ttl, Issuer: "menyqr", now: time.Now}
}

func (t *Tokens) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

func (t *Tokens) Issue(userID string) (string, error) {
	if len(t.Secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}
	if userID == "" {
		return "", errors.New("empty user id")
	}

	now := t.clock()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    t.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

// Parse returns the user id of a valid token.
func (t *Tokens) Parse(tokenString string) (string, error) {
	if len(t.Secret) == 0 || tokenString == "" {
		return "", ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.Secret, nil
	},
		jwt.WithTimeFunc(t.clock),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(t.Issuer),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
