package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tasktrade/internal/auth"
	"tasktrade/internal/model"
)

// MockBookingService is a mock implementation of service.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, booking *model.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingService) ListByUser(ctx context.Context, email string) ([]model.EnrichedBooking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EnrichedBooking), args.Error(1)
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestBookingHandler_Create(t *testing.T) {
	validBody := `{
		"serviceId":"` + primitive.NewObjectID().Hex() + `",
		"serviceName":"Cleaning",
		"serviceImage":"https://img",
		"providerEmail":"p@example.com",
		"providerName":"Paula",
		"userEmail":"u@example.com",
		"userName":"Uma",
		"serviceDate":"2026-09-01",
		"price":100
	}`

	t.Run("created", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Booking) bool {
			return b.UserEmail == "u@example.com" && b.SpecialInstructions == ""
		})).Return(primitive.NewObjectID().Hex(), nil)
		h := NewBookingHandler(svc)

		c, rec := newTestContext(http.MethodPost, "/bookings", validBody)
		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Booking created successfully.")
		assert.Contains(t, rec.Body.String(), "bookingId")
		svc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := new(MockBookingService)
		h := NewBookingHandler(svc)

		c, _ := newTestContext(http.MethodPost, "/bookings", `{"serviceName":"Cleaning"}`)
		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Missing required fields.", httpErr.Message)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		svc := new(MockBookingService)
		h := NewBookingHandler(svc)

		zeroPriceBody := strings.Replace(validBody, `"price":100`, `"price":0`, 1)
		c, _ := newTestContext(http.MethodPost, "/bookings", zeroPriceBody)
		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Missing required fields.", httpErr.Message)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingHandler_List_ScopedToTokenEmail(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("ListByUser", mock.Anything, "u@example.com").Return([]model.EnrichedBooking{
		{
			Booking:        model.Booking{UserEmail: "u@example.com", ServiceStatus: model.StatusPending},
			ServiceDetails: map[string]string{"name": "Service not found"},
		},
	}, nil)
	h := NewBookingHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/bookings", "")
	c.Set(auth.ContextKey, jwt.MapClaims{"email": "u@example.com"})

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"serviceStatus":"pending"`)
	assert.Contains(t, rec.Body.String(), `"serviceDetails"`)
	svc.AssertExpectations(t)
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	t.Run("missing status", func(t *testing.T) {
		svc := new(MockBookingService)
		h := NewBookingHandler(svc)

		c, _ := newTestContext(http.MethodPut, "/bookings/"+id, `{"serviceStatus":""}`)
		c.SetParamNames("id")
		c.SetParamValues(id)

		err := h.UpdateStatus(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Service status is required.", httpErr.Message)
		svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updated", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("UpdateStatus", mock.Anything, id, "working").Return(nil)
		h := NewBookingHandler(svc)

		c, rec := newTestContext(http.MethodPut, "/bookings/"+id, `{"serviceStatus":"working"}`)
		c.SetParamNames("id")
		c.SetParamValues(id)

		assert.NoError(t, h.UpdateStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Booking status updated successfully.")
		svc.AssertExpectations(t)
	})
}
