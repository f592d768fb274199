package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAccessCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code := GenerateAccessCode()
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match the expected format", code)
		}
		seen[code] = struct{}{}
	}
	if len(seen) != 1000 {
		t.Fatalf("expected 1000 distinct codes, got %d", len(seen))
	}
}

func TestValidateJWT(t *testing.T) {
	secret := "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "instructor@example.com",
		StandardClaims: jwt.StandardClaims{
			Subject:   "caller-123",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := ValidateJWT(signed, secret)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}
	if claims.Subject != "caller-123" {
		t.Fatalf("expected subject 'caller-123', got %q", claims.Subject)
	}
	if claims.Email != "instructor@example.com" {
		t.Fatalf("unexpected email claim %q", claims.Email)
	}

	if _, err := ValidateJWT(signed, "wrong-secret"); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}
