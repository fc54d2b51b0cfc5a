// Package api exposes the repair engine over HTTP: a chi router, JWT bearer
// auth for interactive clients, and a bcrypt-hashed static API key for
// service-to-service callers.
package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates JWTs for interactive API clients.
type AuthService struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewAuthService builds an AuthService signing with secretKey.
func NewAuthService(secretKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{secretKey: secretKey, tokenTTL: tokenTTL}
}

// IssueToken returns a signed JWT identifying a caller by clientID.
func (s *AuthService) IssueToken(clientID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"client_id": clientID,
		"exp":       now.Add(s.tokenTTL).Unix(),
		"iat":       now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and verifies a bearer token, rejecting anything not
// signed with HS256 to rule out an algorithm-confusion attack.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != "HS256" {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// HashAPIKey bcrypt-hashes a static API key for storage in config, so the
// raw key never sits in jsonrepair.yml or the environment in plaintext.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyAPIKey reports whether key matches the bcrypt hash produced by
// HashAPIKey.
func VerifyAPIKey(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
