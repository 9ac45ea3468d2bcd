package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecret holds the signing key. The development fallback matches the
// config default; ConfigureJWT overwrites it at startup.
var jwtSecret = []byte("your_secret_key")

// ConfigureJWT sets the signing secret from the loaded config. Call once
// before serving.
func ConfigureJWT(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

func getJWTSecret() []byte {
	return jwtSecret
}

type JWTClaims struct {
	HostID string `json:"hostId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an access token for a host.
func GenerateJWT(hostID, email string) (string, error) {
	claims := JWTClaims{
		HostID: hostID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ParseJWT validates a token string and returns its claims.
func ParseJWT(tokenStr string) (*JWTClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
