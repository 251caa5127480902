package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(map[string]interface{}{
		"email": "provider@example.com",
		"name":  "Provider",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "provider@example.com", claims["email"])
	assert.Equal(t, "Provider", claims["name"])
	assert.NotEmpty(t, claims["jti"])

	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.InDelta(t, time.Now().Add(TokenExpiry).Unix(), int64(exp), 5)
}

func TestTokenService_VerifyFailures(t *testing.T) {
	svc := NewTokenService("test-secret")

	makeExpired := func() string {
		claims := jwt.MapClaims{
			"email": "user@example.com",
			"exp":   jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)
		return token
	}

	makeForeign := func() string {
		other := NewTokenService("other-secret")
		token, err := other.Issue(map[string]interface{}{"email": "user@example.com"})
		assert.NoError(t, err)
		return token
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-token"},
		{name: "expired", token: makeExpired()},
		{name: "bad signature", token: makeForeign()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
