package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tasktrade/internal/model"
)

// ServiceRepository defines service persistence operations. Identifier-based
// operations validate the id before querying and return ErrInvalidID for
// ill-formed values.
type ServiceRepository interface {
	Insert(ctx context.Context, service *model.Service) (string, error)
	FindByID(ctx context.Context, id string) (*model.Service, error)
	Find(ctx context.Context, providerEmail string) ([]model.Service, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type serviceRepository struct {
	coll *mongo.Collection
}

// NewServiceRepository builds a Mongo-backed service repository.
func NewServiceRepository(db *mongo.Database, collection string) ServiceRepository {
	return &serviceRepository{coll: db.Collection(collection)}
}

func (r *serviceRepository) Insert(ctx context.Context, service *model.Service) (string, error) {
	res, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*model.Service, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var service model.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// Find lists services, optionally scoped to a provider email.
func (r *serviceRepository) Find(ctx context.Context, providerEmail string) ([]model.Service, error) {
	filter := bson.M{}
	if providerEmail != "" {
		filter["providerEmail"] = providerEmail
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []model.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// UpdateByID applies a field-level $set and reports how many documents were
// modified. Zero means absent or unchanged; the store cannot tell which.
func (r *serviceRepository) UpdateByID(ctx context.Context, id string, fields bson.M) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *serviceRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
