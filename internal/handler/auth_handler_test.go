package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tasktrade/internal/auth"
)

func TestAuthHandler_IssueToken_SetsCookie(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	tests := []struct {
		name             string
		production       bool
		expectedSecure   bool
		expectedSameSite http.SameSite
	}{
		{name: "development", production: false, expectedSecure: false, expectedSameSite: http.SameSiteStrictMode},
		{name: "production", production: true, expectedSecure: true, expectedSameSite: http.SameSiteNoneMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(tokens, tt.production)

			c, rec := newTestContext(http.MethodPost, "/jwt", `{"email":"u@example.com"}`)
			assert.NoError(t, h.IssueToken(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":true`)

			cookies := rec.Result().Cookies()
			assert.Len(t, cookies, 1)
			cookie := cookies[0]
			assert.Equal(t, auth.CookieName, cookie.Name)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, tt.expectedSecure, cookie.Secure)
			assert.Equal(t, tt.expectedSameSite, cookie.SameSite)

			claims, err := tokens.Verify(cookie.Value)
			assert.NoError(t, err)
			assert.Equal(t, "u@example.com", claims["email"])
		})
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(auth.NewTokenService("test-secret"), false)

	c, rec := newTestContext(http.MethodPost, "/logout", "")
	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
