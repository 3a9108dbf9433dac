package auth

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an admin login stays valid.
const SessionTTL = 24 * time.Hour

var (
	secretOnce sync.Once
	jwtSecret  []byte
)

func secret() []byte {
	secretOnce.Do(func() {
		s := os.Getenv("JWT_SECRET")
		if s == "" {
			s = "dev-secret-change-me"
			log.Println("JWT_SECRET not set, using insecure development secret")
		}
		jwtSecret = []byte(s)
	})
	return jwtSecret
}

// Claims carried by the admin session token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken issues a session JWT for the shared admin identity.
func GenerateToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(SessionTTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret())
	return signed, expiresAt, err
}

// ParseAndValidate checks the token signature and expiry and returns the claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("could not extract claims")
	}
	return claims, nil
}
