package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable offering published by a provider.
//
// Price is kept exactly as received on creation (number or string); the
// update path coerces it to a float. Clients depend on both behaviors.
type Service struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	ImageURL      string             `json:"imageUrl" bson:"imageUrl"`
	Price         any                `json:"price" bson:"price"`
	Area          string             `json:"area" bson:"area"`
	Description   string             `json:"description" bson:"description"`
	ProviderEmail string             `json:"providerEmail" bson:"providerEmail"`
}

// EnrichedService is a Service plus the provider's public profile, joined at
// read time. The stored document never carries these fields.
type EnrichedService struct {
	Service
	ProviderName  string `json:"providerName"`
	ProviderImage string `json:"providerImage"`
}
