package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tasktrade/internal/errors"
	"tasktrade/internal/model"
	"tasktrade/internal/service"
)

// ServiceHandler handles service catalog endpoints.
type ServiceHandler struct {
	svc service.ServiceService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(svc service.ServiceService) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// CreateServiceRequest is the payload for publishing a service.
type CreateServiceRequest struct {
	Name          string `json:"name" validate:"required"`
	ImageURL      string `json:"imageUrl" validate:"required"`
	Price         any    `json:"price" validate:"required"`
	Area          string `json:"area" validate:"required"`
	Description   string `json:"description" validate:"required"`
	ProviderEmail string `json:"providerEmail" validate:"required"`
}

// UpdateServiceRequest is the payload for updating a service. Area and
// imageUrl are optional and applied only when present.
type UpdateServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       any    `json:"price" validate:"required"`
	Area        string `json:"area"`
	ImageURL    string `json:"imageUrl"`
}

// Create godoc
// @Summary Publish a service
// @Tags services
// @Accept json
// @Produce json
// @Param service body CreateServiceRequest true "Service payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}
	if !hasPrice(req.Price) {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	svc := &model.Service{
		Name:          req.Name,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		Area:          req.Area,
		Description:   req.Description,
		ProviderEmail: req.ProviderEmail,
	}
	id, err := h.svc.Create(c.Request().Context(), svc)
	if err != nil {
		return errors.Translate(c, err, "Failed to add service.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Service added successfully.",
		"serviceId": id,
	})
}

// List godoc
// @Summary List services, enriched with provider profiles
// @Tags services
// @Produce json
// @Param providerEmail query string false "Scope to one provider"
// @Success 200 {array} model.EnrichedService
// @Failure 500 {object} map[string]string
// @Router /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.svc.List(c.Request().Context(), c.QueryParam("providerEmail"))
	if err != nil {
		return errors.Translate(c, err, "Failed to fetch services.")
	}
	return c.JSON(http.StatusOK, services)
}

// Get godoc
// @Summary Get a service by id, enriched with its provider profile
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} model.EnrichedService
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	enriched, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.Translate(c, err, "Failed to fetch service.")
	}
	return c.JSON(http.StatusOK, enriched)
}

// Update godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body UpdateServiceRequest true "Service payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	// the id is rejected before the body is even looked at; clients depend
	// on this message precedence
	if _, err := primitive.ObjectIDFromHex(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid service ID")
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}
	if !hasPrice(req.Price) {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	err := h.svc.Update(c.Request().Context(), c.Param("id"), service.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Area:        req.Area,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.Translate(c, err, "Failed to update service.")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Service updated successfully."})
}

// Delete godoc
// @Summary Delete a service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.Translate(c, err, "Failed to delete service")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Service deleted successfully"})
}

// hasPrice reports whether a price value is present and non-falsy. The
// required tag only nil-checks an interface field, so 0 and "" slip through
// it, while clients expect both to read as missing.
func hasPrice(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case float64:
		return n != 0
	case int:
		return n != 0
	case string:
		return n != ""
	case bool:
		return n
	default:
		return true
	}
}
