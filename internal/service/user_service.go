package service

import (
	"context"
	"errors"

	"tasktrade/internal/cache"
	"tasktrade/internal/model"
	"tasktrade/internal/repository"
)

// ErrUserAlreadyExists is returned when the email is already registered.
// Callers treat it as a success: the record exists and is never duplicated.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserService exposes user operations.
type UserService interface {
	Create(ctx context.Context, user *model.User) (string, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with its repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) Create(ctx context.Context, user *model.User) (string, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return "", ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	_ = s.cache.Delete(ctx, providerCacheKey(user.Email))
	return id, nil
}
