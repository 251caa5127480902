package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrade/internal/errors"
	"tasktrade/internal/model"
	"tasktrade/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CreateReviewRequest is the payload for submitting a review.
type CreateReviewRequest struct {
	Reviewer string  `json:"reviewer" validate:"required"`
	Rating   float64 `json:"rating" validate:"required"`
	Content  string  `json:"content" validate:"required"`
}

// Create godoc
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required.")
	}

	review := &model.Review{
		Reviewer: req.Reviewer,
		Rating:   req.Rating,
		Content:  req.Content,
	}
	id, err := h.svc.Create(c.Request().Context(), review)
	if err != nil {
		return errors.Translate(c, err, "Failed to submit review.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Review submitted successfully.",
		"reviewId": id,
	})
}

// List godoc
// @Summary List all reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} model.Review
// @Failure 500 {object} map[string]string
// @Router /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errors.Translate(c, err, "Failed to fetch reviews.")
	}
	return c.JSON(http.StatusOK, reviews)
}
