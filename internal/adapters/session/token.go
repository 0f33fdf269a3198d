package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"elevatecart/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "elevatecart"

type jwtClaims struct {
	jwt.RegisteredClaims
}

type jwtSessions struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// JWTSessions issues and verifies cart session tokens signed with HS256.
type JWTSessions interface {
	domain.SessionIssuer
	domain.SessionVerifier
}

// NewJWTSessions returns session tokens signed with secret. Tokens expire after
// maxAge; the cookie carrying them still ends with the browsing session.
func NewJWTSessions(secret string, maxAge time.Duration) JWTSessions {
	return &jwtSessions{secret: []byte(secret), maxAge: maxAge, now: time.Now}
}

func (s *jwtSessions) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSessions) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid session token: missing subject")
	}
	return claims.Subject, nil
}

// NewSessionID returns a random 128-bit hex session id.
func NewSessionID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
