package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a marketplace identity, created on first sign-in and looked up by
// email when enriching services with provider details. Never updated or
// deleted.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Image string             `json:"image" bson:"image"`
}
