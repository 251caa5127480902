package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasktrade/internal/config"
	"tasktrade/internal/handler"
)

// Register wires routes and middleware. The auth gate guards exactly the
// routes the clients expect it on: service lookup and update by id, booking
// creation, listing and status update. Service creation, listing and
// deletion, reviews and users are deliberately open.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gate echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	bookingHandler *handler.BookingHandler,
	reviewHandler *handler.ReviewHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// the auth cookie crosses origins, so CORS must allow credentials from
	// an explicit allow-list
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Authentication
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/logout", authHandler.Logout)

	// Services
	e.POST("/services", serviceHandler.Create)
	e.GET("/services", serviceHandler.List)
	e.GET("/services/:id", serviceHandler.Get, gate)
	e.PUT("/services/:id", serviceHandler.Update, gate)
	e.DELETE("/services/:id", serviceHandler.Delete)

	// Bookings
	e.POST("/bookings", bookingHandler.Create, gate)
	e.GET("/bookings", bookingHandler.List, gate)
	e.PUT("/bookings/:id", bookingHandler.UpdateStatus, gate)

	// Reviews
	e.POST("/reviews", reviewHandler.Create)
	e.GET("/reviews", reviewHandler.List)

	// Users
	e.POST("/users", userHandler.Create)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
