package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the gate stores the verified identity claims.
const ContextKey = "user"

// Gate guards a route with the identity cookie. A missing cookie and an
// invalid token produce distinct 401 messages; both are part of the client
// contract.
func Gate(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if _, cookieErr := c.Cookie(CookieName); cookieErr != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access.")
		},
	})
}

// IdentityEmail reads the authenticated email attached by the gate. Returns
// an empty string when the claim is absent.
func IdentityEmail(c echo.Context) string {
	claims, ok := c.Get(ContextKey).(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
