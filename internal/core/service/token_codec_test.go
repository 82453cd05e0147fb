package service

import (
	"strings"
	"testing"

	"github.com/shoply/storefront-api/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret")

	token, err := codec.Issue("u1", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.ID != "u1" || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a").Issue("u1", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenCodec("secret-b").Decode(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec("secret")
	token, err := codec.Issue("u1", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte in the signature segment.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := codec.Decode(tampered); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenCodec_MalformedToken(t *testing.T) {
	codec := NewTokenCodec("secret")
	for _, token := range []string{"", "garbage", "a.b", strings.Repeat("x", 64)} {
		if _, err := codec.Decode(token); err != domain.ErrInvalidToken {
			t.Fatalf("Decode(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokenCodec_MissingSubjectClaim(t *testing.T) {
	codec := NewTokenCodec("secret")
	token, err := codec.Issue("", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := codec.Decode(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty subject id, got %v", err)
	}
}
