package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"tasktrade/internal/cache"
	apperrors "tasktrade/internal/errors"
	"tasktrade/internal/model"
	"tasktrade/internal/repository"
)

const enrichCacheTTL = 5 * time.Minute

const (
	unknownProvider  = "Unknown"
	placeholderImage = "https://via.placeholder.com/100"
)

func providerCacheKey(email string) string {
	return "provider:" + email
}

func serviceCacheKey(id string) string {
	return "service:" + id
}

// UpdateServiceInput carries the mutable service fields. Area and ImageURL
// are applied only when present; Price is coerced to a float.
type UpdateServiceInput struct {
	Name        string
	Description string
	Price       any
	Area        string
	ImageURL    string
}

// ServiceService exposes service catalog operations.
type ServiceService interface {
	Create(ctx context.Context, service *model.Service) (string, error)
	List(ctx context.Context, providerEmail string) ([]model.EnrichedService, error)
	Get(ctx context.Context, id string) (*model.EnrichedService, error)
	Update(ctx context.Context, id string, in UpdateServiceInput) error
	Delete(ctx context.Context, id string) error
}

type serviceService struct {
	services repository.ServiceRepository
	users    repository.UserRepository
	cache    *cache.Client
}

// NewServiceService builds a ServiceService with its repositories and cache.
func NewServiceService(services repository.ServiceRepository, users repository.UserRepository, cache *cache.Client) ServiceService {
	return &serviceService{services: services, users: users, cache: cache}
}

func (s *serviceService) Create(ctx context.Context, service *model.Service) (string, error) {
	// price is stored exactly as received; only the update path coerces it
	return s.services.Insert(ctx, service)
}

func (s *serviceService) List(ctx context.Context, providerEmail string) ([]model.EnrichedService, error) {
	services, err := s.services.Find(ctx, providerEmail)
	if err != nil {
		return nil, err
	}

	// one provider lookup per service, concurrently; output order matches
	// input order regardless of lookup completion order
	enriched := make([]model.EnrichedService, len(services))
	g, gctx := errgroup.WithContext(ctx)
	for i, svc := range services {
		g.Go(func() error {
			enriched[i] = s.enrich(gctx, svc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

func (s *serviceService) Get(ctx context.Context, id string) (*model.EnrichedService, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.InvalidArgument("Invalid service ID")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Service not found.")
		}
		return nil, err
	}
	enriched := s.enrich(ctx, *svc)
	return &enriched, nil
}

func (s *serviceService) Update(ctx context.Context, id string, in UpdateServiceInput) error {
	price, ok := coerceFloat(in.Price)
	if !ok {
		return apperrors.InvalidArgument("Invalid price.")
	}

	fields := bson.M{
		"name":        in.Name,
		"description": in.Description,
		"price":       price,
	}
	if in.Area != "" {
		fields["area"] = in.Area
	}
	if in.ImageURL != "" {
		fields["imageUrl"] = in.ImageURL
	}

	modified, err := s.services.UpdateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return apperrors.InvalidArgument("Invalid service ID")
		}
		return err
	}
	if modified == 0 {
		return apperrors.NotFound("Service not found or unchanged.")
	}
	_ = s.cache.Delete(ctx, serviceCacheKey(id))
	return nil
}

func (s *serviceService) Delete(ctx context.Context, id string) error {
	deleted, err := s.services.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return apperrors.InvalidArgument("Invalid service ID")
		}
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Service not found")
	}
	_ = s.cache.Delete(ctx, serviceCacheKey(id))
	return nil
}

// enrich joins the provider's public profile onto a shallow copy of the
// service. A missing provider degrades to placeholder values, never an
// error.
func (s *serviceService) enrich(ctx context.Context, svc model.Service) model.EnrichedService {
	out := model.EnrichedService{
		Service:       svc,
		ProviderName:  unknownProvider,
		ProviderImage: placeholderImage,
	}
	provider := s.lookupProvider(ctx, svc.ProviderEmail)
	if provider != nil {
		if provider.Name != "" {
			out.ProviderName = provider.Name
		}
		if provider.Image != "" {
			out.ProviderImage = provider.Image
		}
	}
	return out
}

func (s *serviceService) lookupProvider(ctx context.Context, email string) *model.User {
	key := providerCacheKey(email)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	provider, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil
	}
	if payload, err := json.Marshal(provider); err == nil {
		_ = s.cache.Set(ctx, key, payload, enrichCacheTTL)
	}
	return provider
}

// coerceFloat accepts a JSON number or a numeric string.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
