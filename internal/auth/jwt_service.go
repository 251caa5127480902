package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the fixed lifetime of an identity token.
const TokenExpiry = time.Hour

// CookieName is the HTTP-only cookie that carries the identity token.
const CookieName = "token"

// ErrInvalidToken is returned by Verify for any expired, malformed or
// badly signed token. Callers cannot distinguish the sub-cases.
var ErrInvalidToken = errors.New("invalid token")

// TokenService signs and verifies identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token embedding the identity payload as-is, with a one hour
// expiry. The payload is whatever the client authenticated as, expected to
// include "email".
func (s *TokenService) Issue(identity map[string]interface{}) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(now.Add(TokenExpiry))
	claims["iat"] = jwt.NewNumericDate(now)
	claims["jti"] = uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token string and returns the embedded identity claims.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
