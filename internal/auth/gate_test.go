package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGatedEcho(t *testing.T, tokens *TokenService) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, IdentityEmail(c))
	}, Gate(tokens))
	return e
}

func TestGate_NoCookie(t *testing.T) {
	tokens := NewTokenService("test-secret")
	e := newGatedEcho(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied. No token provided.")
}

func TestGate_InvalidToken(t *testing.T) {
	tokens := NewTokenService("test-secret")
	e := newGatedEcho(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized access.")
}

func TestGate_ValidToken(t *testing.T) {
	tokens := NewTokenService("test-secret")
	e := newGatedEcho(t, tokens)

	token, err := tokens.Issue(map[string]interface{}{"email": "user@example.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", rec.Body.String())
}
