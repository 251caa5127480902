package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrade/internal/errors"
	"tasktrade/internal/model"
	"tasktrade/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the payload for first sign-in registration.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Image string `json:"image" validate:"required"`
}

// Create godoc
// @Summary Register a user on first sign-in
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 200 {object} map[string]string "Email already registered"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	}
	id, err := h.svc.Create(c.Request().Context(), user)
	if err != nil {
		if stderrors.Is(err, service.ErrUserAlreadyExists) {
			return c.JSON(http.StatusOK, echo.Map{"message": "User already exists."})
		}
		return errors.Translate(c, err, "Failed to add user.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User added successfully.",
		"userId":  id,
	})
}
