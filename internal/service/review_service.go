package service

import (
	"context"
	"time"

	"tasktrade/internal/model"
	"tasktrade/internal/repository"
)

// ReviewService exposes review operations. Reviews are returned unenriched.
type ReviewService interface {
	Create(ctx context.Context, review *model.Review) (string, error)
	List(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
}

// NewReviewService builds a ReviewService with its repository.
func NewReviewService(reviews repository.ReviewRepository) ReviewService {
	return &reviewService{reviews: reviews}
}

// Create stamps the submission date server-side.
func (s *reviewService) Create(ctx context.Context, review *model.Review) (string, error) {
	review.Date = time.Now()
	return s.reviews.Insert(ctx, review)
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.reviews.FindAll(ctx)
}
