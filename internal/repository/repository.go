package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned for identifiers that are not well-formed object
// ids. Such identifiers never reach the store.
var ErrInvalidID = errors.New("invalid object id")

// ErrNotFound is returned when no document matches a lookup.
var ErrNotFound = errors.New("document not found")

// parseID validates a client-supplied identifier before it is used in any
// query.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
