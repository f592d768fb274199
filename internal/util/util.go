package util

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// Claims carried by the transport-layer bearer token. Subject holds the
// opaque caller identity issued by the user pool.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

func ValidateJWT(tokenString string, jwtSecret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

const accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccessCode produces a shareable join code of the form
// XXXX-XXXX-XXXX-XXXX over A-Z0-9. Codes are not secrets.
func GenerateAccessCode() string {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(accessCodeAlphabet[rand.IntN(len(accessCodeAlphabet))])
	}
	return b.String()
}
