package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is submitted once and never mutated or deleted.
type Review struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Reviewer string             `json:"reviewer" bson:"reviewer"`
	Rating   float64            `json:"rating" bson:"rating"`
	Content  string             `json:"content" bson:"content"`
	Date     time.Time          `json:"date" bson:"date"`
}
