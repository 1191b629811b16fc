// Package token verifies the bearer tokens that identify a principal. The
// subject claim carries the user id; the role is always read from storage.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingKey   = errors.New("token signing key is not configured")
)

type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type Manager struct {
	config Config
	now    func() time.Time
}

func NewManager(config Config) *Manager {
	return &Manager{config: config, now: time.Now}
}

// Issue signs a token for userID. The API never calls it; it backs the
// token CLI and tests.
func (m *Manager) Issue(userID uint64) (string, error) {
	if m.config.Secret == "" {
		return "", ErrMissingKey
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.config.Issuer,
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.config.Secret))
}

// Verify returns the user id carried by a valid token.
func (m *Manager) Verify(tokenString string) (uint64, error) {
	if m.config.Secret == "" {
		return 0, ErrMissingKey
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.Secret), nil
	},
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
