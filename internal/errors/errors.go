package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Error is a request failure that already knows its HTTP status and the exact
// message the client should see.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidArgument marks a malformed identifier or missing required field.
func InvalidArgument(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound marks a missing record, or an update that modified nothing.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Unauthenticated marks a missing or invalid token.
func Unauthenticated(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Translate maps a failure to the HTTP response every handler returns.
// Taxonomy errors carry their own status and message; anything else is a
// store failure, logged with request context and surfaced as a 500 with the
// route's message.
func Translate(c echo.Context, err error, storeMessage string) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.Status, appErr.Message)
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg(storeMessage)
	return echo.NewHTTPError(http.StatusInternalServerError, storeMessage)
}
