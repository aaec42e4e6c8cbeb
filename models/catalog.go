package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolution targets for polymorphic references. Their own CRUD surfaces live
// outside this core; the documents exist here so resolved targets decode into
// known shapes.

// RentalPrice holds the per-period rental rates.
type RentalPrice struct {
	PerHour string `json:"perHour" bson:"perHour"`
	PerDay  string `json:"perDay" bson:"perDay"`
	PerWeek string `json:"perWeek" bson:"perWeek"`
}

// Rental model
type Rental struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Vehicle     primitive.ObjectID `json:"vehicle" bson:"vehicle"`
	Description string             `json:"description" bson:"description"`
	Images      []string           `json:"images" bson:"images"`
	Price       RentalPrice        `json:"price" bson:"price"`
	Status      string             `json:"status" bson:"status"` // "available", "in-use", "unavailable"
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Subservice model: a single bookable workshop service (oil change, brake
// repair, complete wash, ...).
type Subservice struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price"`
	Duration     float64            `json:"duration" bson:"duration"`
	Availability bool               `json:"availability" bson:"availability"`
	Thumbnail    string             `json:"thumbnail" bson:"thumbnail"`
	Images       []string           `json:"images" bson:"images"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Service model: a service category grouping subservices.
type Service struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Category    string               `json:"category" bson:"category"` // "Auto Repair", "Car Wash", "Body Shop"
	Description string               `json:"description" bson:"description"`
	Thumbnail   string               `json:"thumbnail" bson:"thumbnail"`
	Subservices []primitive.ObjectID `json:"subservices" bson:"subservices"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Inventory model: a stocked part or accessory.
type Inventory struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Category  string             `json:"category" bson:"category"` // "parts", "accessories"
	Brand     string             `json:"brand" bson:"brand"`
	Make      string             `json:"make" bson:"make"`
	Model     string             `json:"model" bson:"model"`
	ModelNo   string             `json:"modelNo" bson:"modelNo"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Thumbnail string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Vehicle model: a customer-registered vehicle attached to bookings.
type Vehicle struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Owner        primitive.ObjectID `json:"owner" bson:"owner"`
	Make         string             `json:"make" bson:"make"`
	Model        string             `json:"model" bson:"model"`
	Year         int                `json:"year" bson:"year"`
	LicensePlate string             `json:"licensePlate" bson:"licensePlate"`
	Photo        string             `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
