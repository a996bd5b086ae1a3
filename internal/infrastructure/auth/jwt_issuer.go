// Package auth signs the session tokens handed out at login.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL = 30 * 24 * time.Hour
	issuer     = "checkmaster"
)

var ErrMissingSecret = errors.New("missing JWT_SECRET")

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// JWTIssuer issues HS256 tokens carrying the inspector's e-mail as subject.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(email, name string) (string, time.Time, error) {
	now := i.now().UTC()
	expiresAt := now.Add(i.ttl)
	claims := sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (i *JWTIssuer) Parse(token string) (entities.Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return entities.Session{}, err
	}
	s := entities.Session{Email: claims.Subject, Name: claims.Name, Authenticated: true}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return s, nil
}
