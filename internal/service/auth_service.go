package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tabata_timer/internal/logger"
	"tabata_timer/internal/repository"
)

// PinHashKey holds a PIN hash set from the CLI when none is configured.
const PinHashKey = "tabata-auth-pin-hash"

const (
	defaultTokenTTL = 12 * time.Hour
	tokenSubject    = "controller"
)

// Domain errors for auth flows.
var (
	ErrAuthDisabled = errors.New("control pin is not configured")
	ErrInvalidPin   = errors.New("invalid pin")
	ErrInvalidToken = errors.New("invalid token")
)

// AuthConfig configures the control PIN and token signing.
type AuthConfig struct {
	PinHash    string // bcrypt; empty defers to the store
	SigningKey string // empty: random per process
	TokenTTL   time.Duration
}

// AuthService guards session control behind a PIN. With no PIN the API is
// open and Enabled reports false.
type AuthService struct {
	mu      sync.RWMutex
	store   repository.KVStore
	log     *logger.Logger
	pinHash string
	cfgHash string // from configuration; wins over the store
	key     []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewAuthService(ctx context.Context, store repository.KVStore, cfg AuthConfig, log *logger.Logger) *AuthService {
	s := &AuthService{
		store:   store,
		log:     logger.OrNop(log),
		pinHash: strings.TrimSpace(cfg.PinHash),
		cfgHash: strings.TrimSpace(cfg.PinHash),
		key:     []byte(cfg.SigningKey),
		ttl:     cfg.TokenTTL,
		now:     time.Now,
	}
	if s.ttl <= 0 {
		s.ttl = defaultTokenTTL
	}
	if len(s.key) == 0 {
		s.key = randomKey()
		s.log.Infow("auth_signing_key_generated", "note", "tokens do not survive a restart")
	}
	if s.pinHash == "" && store != nil {
		hash, ok, err := store.Get(ctx, PinHashKey)
		if err != nil {
			s.log.Warnw("auth_pin_load_failed", "error", err)
		} else if ok {
			s.pinHash = hash
		}
	}
	return s
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
}

// Enabled reports whether a PIN is required.
func (s *AuthService) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pinHash != ""
}

// SetPin hashes pin and persists it.
func (s *AuthService) SetPin(ctx context.Context, pin string) error {
	hash, err := hashPin(pin)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, PinHashKey, hash); err != nil {
		return fmt.Errorf("store pin hash: %w", err)
	}

	s.mu.Lock()
	s.pinHash = hash
	s.mu.Unlock()
	return nil
}

// ClearPin removes the stored PIN. A configured hash still applies.
func (s *AuthService) ClearPin(ctx context.Context) error {
	if err := s.store.Delete(ctx, PinHashKey); err != nil {
		return fmt.Errorf("delete pin hash: %w", err)
	}

	s.mu.Lock()
	s.pinHash = s.cfgHash
	s.mu.Unlock()
	return nil
}

// GenerateToken checks pin and returns a signed JWT.
func (s *AuthService) GenerateToken(pin string) (string, error) {
	s.mu.RLock()
	hash := s.pinHash
	s.mu.RUnlock()

	if hash == "" {
		return "", ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return "", ErrInvalidPin
	}
	return s.issueToken()
}

// ParseToken verifies accessToken and returns its subject.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != tokenSubject {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) issueToken() (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenSubject,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(s.key)
}

// HashPin returns the bcrypt hash of pin, for auth.pin_hash in the config.
func HashPin(pin string) (string, error) {
	return hashPin(pin)
}

func hashPin(pin string) (string, error) {
	if strings.TrimSpace(pin) == "" {
		return "", errors.New("pin is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}

func randomKey() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return key
}
