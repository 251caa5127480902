package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tasktrade/internal/model"
)

// UserRepository defines user persistence operations. Users are keyed by
// email everywhere outside the store.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed user repository.
func NewUserRepository(db *mongo.Database, collection string) UserRepository {
	return &userRepository{coll: db.Collection(collection)}
}

func (r *userRepository) Insert(ctx context.Context, user *model.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
