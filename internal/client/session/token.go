// Package session issues and validates the signed tokens that back the
// local session record. There is no backend: the signing secret is
// generated per device and kept in the local store, so a hand-edited or
// copied session record reads as anonymous instead of authenticated.
package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/countries-explorer/internal/client/storage"
)

// secretKey is the store key the per-device signing secret lives under
const secretKey = "session_secret"

// secretSize is the signing secret length in bytes
const secretSize = 32

// DefaultTTL is the default session lifetime
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken возвращается для просроченного или поддельного токена
var ErrInvalidToken = errors.New("invalid session token")

// Claims represents session token claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and validates HS256-signed session tokens
type Service struct {
	store storage.KV
	ttl   time.Duration
}

// NewService creates a new session token service.
// ttl <= 0 falls back to DefaultTTL.
func NewService(store storage.KV, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		store: store,
		ttl:   ttl,
	}
}

// Issue creates a new signed session token for username
func (s *Service) Issue(ctx context.Context, username string) (string, error) {
	secret, err := s.getOrCreateSecret(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "countries-explorer",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses tokenString and returns the username it was issued for.
// Returns ErrInvalidToken for expired, malformed or foreign-signed tokens.
func (s *Service) Validate(ctx context.Context, tokenString string) (string, error) {
	secret, err := s.getOrCreateSecret(ctx)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}

// getOrCreateSecret возвращает секрет подписи, создавая его при первом обращении
func (s *Service) getOrCreateSecret(ctx context.Context) ([]byte, error) {
	secret, err := s.store.Get(ctx, secretKey)
	if err == nil {
		return secret, nil
	}
	if !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to load session secret: %w", err)
	}

	// Первый запуск на этом устройстве: генерируем новый секрет
	secret = make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}

	if err := s.store.Set(ctx, secretKey, secret); err != nil {
		return nil, fmt.Errorf("failed to save session secret: %w", err)
	}

	return secret, nil
}
