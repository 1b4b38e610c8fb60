package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

func TestJWTSessionCodec_RoundTrip(t *testing.T) {
	codec := NewJWTSessionCodec("secret")

	token, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %s", userID)
	}
}

func TestJWTSessionCodec_NoExpiration(t *testing.T) {
	codec := NewJWTSessionCodec("secret")

	token, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no exp claim, got %v", claims.ExpiresAt)
	}
}

func TestJWTSessionCodec_WrongSecret(t *testing.T) {
	token, err := NewJWTSessionCodec("secret-a").Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewJWTSessionCodec("secret-b").Decode(token); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestJWTSessionCodec_Garbage(t *testing.T) {
	codec := NewJWTSessionCodec("secret")

	for _, tkn := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Decode(tkn); err != domain.ErrInvalidSession {
			t.Fatalf("expected ErrInvalidSession for %q, got %v", tkn, err)
		}
	}
}

func TestJWTSessionCodec_RejectsUnsignedToken(t *testing.T) {
	codec := NewJWTSessionCodec("secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-42"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Decode(raw); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}
