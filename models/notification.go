package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotificationTypeGeneral = "general"
	NotificationTypeInfo    = "info"
	NotificationTypeAlert   = "alert"
	NotificationTypeWarning = "warning"
	NotificationTypeSuccess = "success"
)

// Notification read statuses
const (
	NotificationStatusRead   = "read"
	NotificationStatusUnread = "unread"
)

// Notification model. Created once per triggering event; only Status is ever
// mutated afterwards, by the recipient marking it read. The "general" type is a
// broadcast visible to every user.
type Notification struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Title       string             `json:"title" bson:"title"`
	Message     string             `json:"message" bson:"message"`
	Type        string             `json:"type" bson:"type"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
	Status      string             `json:"status" bson:"status"`
	IsImportant bool               `json:"isImportant" bson:"isImportant"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NotificationsResponse model for a user's notification feed
type NotificationsResponse struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Data    []Notification `json:"data,omitempty"`
	Total   int64          `json:"total"`
}
