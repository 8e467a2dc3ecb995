package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseToken_RoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	sub, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if sub != "user-42" {
		t.Fatalf("expected sub user-42, got %q", sub)
	}
}

func TestParseToken_Empty(t *testing.T) {
	InitJWT("test-secret")

	_, err := ParseToken("")
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ParseToken("not-a-jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-42", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	InitJWT("other-secret")
	token, err := GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	InitJWT("test-secret")
	if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseToken_MissingSub(t *testing.T) {
	InitJWT("test-secret")

	now := time.Now()
	claims := jwt.MapClaims{
		"exp": now.Add(time.Hour).Unix(),
		"iat": now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without sub claim, got %v", err)
	}
}
