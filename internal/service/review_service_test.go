package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tasktrade/internal/model"
)

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *model.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func TestReviewService_Create_StampsDate(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	reviewRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *model.Review) bool {
		return !r.Date.IsZero()
	})).Return(primitive.NewObjectID().Hex(), nil)

	svc := NewReviewService(reviewRepo)
	review := &model.Review{Reviewer: "Rita", Rating: 5, Content: "Great work"}
	id, err := svc.Create(context.Background(), review)

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.WithinDuration(t, time.Now(), review.Date, time.Second)
	reviewRepo.AssertExpectations(t)
}
