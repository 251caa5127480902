package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DatabaseName is the marketplace database.
const DatabaseName = "TaskTradeDB"

// Collection names.
const (
	ServicesCollection = "services"
	UsersCollection    = "users"
	BookingsCollection = "bookings"
	ReviewsCollection  = "reviews"
)

// NewMongo returns a connected Mongo client using the stable server API.
func NewMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}

// Database returns the application database handle.
func Database(client *mongo.Client) *mongo.Database {
	return client.Database(DatabaseName)
}
