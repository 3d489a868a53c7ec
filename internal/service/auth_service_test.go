package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSigningKey = "test-signing-key"

func newTestAuth(t *testing.T, store *memKV, pin string) *AuthService {
	t.Helper()
	cfg := AuthConfig{SigningKey: testSigningKey, TokenTTL: time.Hour}
	if pin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		cfg.PinHash = string(hash)
	}
	return NewAuthService(context.Background(), store, cfg, nil)
}

func TestAuthService_DisabledWithoutPin(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "")
	if svc.Enabled() {
		t.Fatal("expected auth disabled")
	}
	if _, err := svc.GenerateToken("1234"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("expected ErrAuthDisabled, got %v", err)
	}
}

func TestAuthService_GenerateAndParse(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "2468")
	if !svc.Enabled() {
		t.Fatal("expected auth enabled")
	}

	token, err := svc.GenerateToken("2468")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	sub, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if sub != tokenSubject {
		t.Fatalf("subject = %q", sub)
	}
}

func TestAuthService_GenerateToken_WrongPin(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "2468")
	if _, err := svc.GenerateToken("0000"); !errors.Is(err, ErrInvalidPin) {
		t.Fatalf("expected ErrInvalidPin, got %v", err)
	}
}

func TestAuthService_SetPinPersistsAndEnables(t *testing.T) {
	ctx := context.Background()
	store := newMemKV()
	svc := newTestAuth(t, store, "")

	if err := svc.SetPin(ctx, "  "); err == nil {
		t.Fatal("expected error for blank pin")
	}
	if err := svc.SetPin(ctx, "1357"); err != nil {
		t.Fatalf("SetPin: %v", err)
	}
	if _, err := svc.GenerateToken("1357"); err != nil {
		t.Fatalf("GenerateToken after SetPin: %v", err)
	}

	reloaded := newTestAuth(t, store, "")
	if !reloaded.Enabled() {
		t.Fatal("stored pin was not picked up on construction")
	}

	if err := svc.ClearPin(ctx); err != nil {
		t.Fatalf("ClearPin: %v", err)
	}
	if svc.Enabled() {
		t.Fatal("pin still enabled in memory after ClearPin")
	}
	if newTestAuth(t, store, "").Enabled() {
		t.Fatal("pin still enabled after ClearPin")
	}
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "1")
	if _, err := svc.ParseToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "1")

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "2468")
	token, err := svc.GenerateToken("2468")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestAuthService_ParseToken_WrongSubject(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "1")

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "someone-else",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	tokenStr, _ := tk.SignedString([]byte(testSigningKey))
	if _, err := svc.ParseToken(tokenStr); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuth(t, newMemKV(), "1")

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

func TestHashPin(t *testing.T) {
	hash, err := HashPin("9999")
	if err != nil {
		t.Fatalf("HashPin: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("9999")) != nil {
		t.Fatal("hash does not verify")
	}
}
