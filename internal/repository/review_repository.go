package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tasktrade/internal/model"
)

// ReviewRepository defines review persistence operations. Reviews are
// append-only.
type ReviewRepository interface {
	Insert(ctx context.Context, review *model.Review) (string, error)
	FindAll(ctx context.Context) ([]model.Review, error)
}

type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository builds a Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collection string) ReviewRepository {
	return &reviewRepository{coll: db.Collection(collection)}
}

func (r *reviewRepository) Insert(ctx context.Context, review *model.Review) (string, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
