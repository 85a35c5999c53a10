package token

import (
	"errors"
	"testing"
	"time"
)

func TestSignParse_RoundTrip(t *testing.T) {
	c := Claims{UserID: "u-1", Name: "Ada", Email: "ada@example.com", Role: "customer"}
	raw, err := Sign("s3cret", c, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	got, err := Parse("s3cret", raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.UserID != "u-1" || got.Role != "customer" || got.Email != "ada@example.com" {
		t.Fatalf("claims = %+v", got)
	}
	if got.ExpiresAt == nil || !got.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not set in the future: %v", got.ExpiresAt)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	raw, err := Sign("right", Claims{UserID: "u-1"}, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse("wrong", raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParse_Expired(t *testing.T) {
	raw, err := Sign("s3cret", Claims{UserID: "u-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse("s3cret", raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("s3cret", "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
