package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrade/internal/auth"
	"tasktrade/internal/errors"
)

// AuthHandler handles token issue and logout endpoints.
type AuthHandler struct {
	tokens     *auth.TokenService
	production bool
}

// NewAuthHandler creates a new auth handler. The production flag controls
// the cookie's secure and sameSite attributes.
func NewAuthHandler(tokens *auth.TokenService, production bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, production: production}
}

// IssueToken godoc
// @Summary Issue an identity token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body map[string]interface{} true "Identity payload, expected to include email"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var identity map[string]interface{}
	if err := c.Bind(&identity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		return errors.Translate(c, err, "Failed to issue token.")
	}

	cookie := h.cookie(token)
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout godoc
// @Summary Clear the identity token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.cookie("")
	cookie.MaxAge = -1
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AuthHandler) cookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	}
	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}
