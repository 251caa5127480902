package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusPending is the status every booking starts in. Providers move
// bookings through their own statuses afterwards; only serviceStatus is
// mutable post-creation.
const StatusPending = "pending"

// Booking is a customer's reservation of a Service.
type Booking struct {
	ID                  primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ServiceID           string             `json:"serviceId" bson:"serviceId"`
	ServiceName         string             `json:"serviceName" bson:"serviceName"`
	ServiceImage        string             `json:"serviceImage" bson:"serviceImage"`
	ProviderEmail       string             `json:"providerEmail" bson:"providerEmail"`
	ProviderName        string             `json:"providerName" bson:"providerName"`
	UserEmail           string             `json:"userEmail" bson:"userEmail"`
	UserName            string             `json:"userName" bson:"userName"`
	ServiceDate         string             `json:"serviceDate" bson:"serviceDate"`
	SpecialInstructions string             `json:"specialInstructions" bson:"specialInstructions"`
	Price               any                `json:"price" bson:"price"`
	ServiceStatus       string             `json:"serviceStatus" bson:"serviceStatus"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
}

// EnrichedBooking is a Booking plus the referenced service document, joined
// at read time. ServiceDetails degrades to {"name": "Service not found"}
// when the service no longer exists.
type EnrichedBooking struct {
	Booking
	ServiceDetails any `json:"serviceDetails"`
}
