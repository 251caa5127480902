package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"tasktrade/internal/cache"
	apperrors "tasktrade/internal/errors"
	"tasktrade/internal/model"
	"tasktrade/internal/repository"
)

// BookingService exposes booking operations.
type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (string, error)
	ListByUser(ctx context.Context, email string) ([]model.EnrichedBooking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type bookingService struct {
	bookings repository.BookingRepository
	services repository.ServiceRepository
	cache    *cache.Client
}

// NewBookingService builds a BookingService with its repositories and cache.
func NewBookingService(bookings repository.BookingRepository, services repository.ServiceRepository, cache *cache.Client) BookingService {
	return &bookingService{bookings: bookings, services: services, cache: cache}
}

// Create stores a booking with serviceStatus "pending" and a server-side
// creation timestamp. Price is kept as received.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (string, error) {
	booking.ServiceStatus = model.StatusPending
	booking.CreatedAt = time.Now()
	return s.bookings.Insert(ctx, booking)
}

func (s *bookingService) ListByUser(ctx context.Context, email string) ([]model.EnrichedBooking, error) {
	if email == "" {
		return nil, apperrors.InvalidArgument("User email is required.")
	}

	bookings, err := s.bookings.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	enriched := make([]model.EnrichedBooking, len(bookings))
	g, gctx := errgroup.WithContext(ctx)
	for i, booking := range bookings {
		g.Go(func() error {
			enriched[i] = s.enrich(gctx, booking)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id, status string) error {
	modified, err := s.bookings.UpdateStatusByID(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return apperrors.InvalidArgument("Invalid booking ID")
		}
		return err
	}
	if modified == 0 {
		return apperrors.NotFound("Booking not found or unchanged.")
	}
	return nil
}

// enrich joins the referenced service onto a shallow copy of the booking.
// Any lookup failure, including a dangling or ill-formed serviceId, degrades
// to the not-found placeholder.
func (s *bookingService) enrich(ctx context.Context, booking model.Booking) model.EnrichedBooking {
	out := model.EnrichedBooking{Booking: booking}
	if svc := s.lookupService(ctx, booking.ServiceID); svc != nil {
		out.ServiceDetails = svc
	} else {
		out.ServiceDetails = map[string]string{"name": "Service not found"}
	}
	return out
}

func (s *bookingService) lookupService(ctx context.Context, id string) *model.Service {
	key := serviceCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Service
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	if payload, err := json.Marshal(svc); err == nil {
		_ = s.cache.Set(ctx, key, payload, enrichCacheTTL)
	}
	return svc
}
