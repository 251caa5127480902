package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tasktrade/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) (string, error)
	FindByUserEmail(ctx context.Context, email string) ([]model.Booking, error)
	UpdateStatusByID(ctx context.Context, id, status string) (int64, error)
}

type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository builds a Mongo-backed booking repository.
func NewBookingRepository(db *mongo.Database, collection string) BookingRepository {
	return &bookingRepository{coll: db.Collection(collection)}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *model.Booking) (string, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *bookingRepository) FindByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []model.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatusByID sets serviceStatus, the only field mutable after
// creation, and reports the modified count.
func (r *bookingRepository) UpdateStatusByID(ctx context.Context, id, status string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"serviceStatus": status}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
