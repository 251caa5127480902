package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrade/internal/auth"
	"tasktrade/internal/errors"
	"tasktrade/internal/model"
	"tasktrade/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	svc service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// CreateBookingRequest is the payload for booking a service. The snapshot
// fields (serviceName, serviceImage, providerName, price) are supplied by
// the client so the booking survives later edits to the service.
type CreateBookingRequest struct {
	ServiceID           string `json:"serviceId" validate:"required"`
	ServiceName         string `json:"serviceName" validate:"required"`
	ServiceImage        string `json:"serviceImage" validate:"required"`
	ProviderEmail       string `json:"providerEmail" validate:"required"`
	ProviderName        string `json:"providerName" validate:"required"`
	UserEmail           string `json:"userEmail" validate:"required"`
	UserName            string `json:"userName" validate:"required"`
	ServiceDate         string `json:"serviceDate" validate:"required"`
	SpecialInstructions string `json:"specialInstructions"`
	Price               any    `json:"price" validate:"required"`
}

// UpdateBookingStatusRequest carries the new serviceStatus.
type UpdateBookingStatusRequest struct {
	ServiceStatus string `json:"serviceStatus" validate:"required"`
}

// Create godoc
// @Summary Book a service
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields.")
	}
	if !hasPrice(req.Price) {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields.")
	}

	booking := &model.Booking{
		ServiceID:           req.ServiceID,
		ServiceName:         req.ServiceName,
		ServiceImage:        req.ServiceImage,
		ProviderEmail:       req.ProviderEmail,
		ProviderName:        req.ProviderName,
		UserEmail:           req.UserEmail,
		UserName:            req.UserName,
		ServiceDate:         req.ServiceDate,
		SpecialInstructions: req.SpecialInstructions,
		Price:               req.Price,
	}
	id, err := h.svc.Create(c.Request().Context(), booking)
	if err != nil {
		return errors.Translate(c, err, "Failed to create booking.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Booking created successfully.",
		"bookingId": id,
	})
}

// List godoc
// @Summary List the authenticated user's bookings, enriched with service details
// @Tags bookings
// @Produce json
// @Success 200 {array} model.EnrichedBooking
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	email := auth.IdentityEmail(c)
	bookings, err := h.svc.ListByUser(c.Request().Context(), email)
	if err != nil {
		return errors.Translate(c, err, "Failed to fetch bookings.")
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary Update a booking's service status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status body UpdateBookingStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Service status is required.")
	}

	if err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.ServiceStatus); err != nil {
		return errors.Translate(c, err, "Failed to update booking status.")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Booking status updated successfully."})
}
