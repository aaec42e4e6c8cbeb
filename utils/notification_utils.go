package utils

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mega-automotives/mega_backend/config"
	"github.com/mega-automotives/mega_backend/models"
)

// SaveNotification persists one notification document. Callers treat a
// failure as a warning; a committed booking/payment mutation is never rolled
// back because its notification could not be saved.
func SaveNotification(db *mongo.Client, notification models.Notification) error {
	collection := config.GetCollection(db, "notifications")

	now := time.Now()
	notification.ID = primitive.NewObjectID()
	notification.Status = models.NotificationStatusUnread
	notification.CreatedAt = now
	notification.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.InsertOne(ctx, notification)
	return err
}

// NewBookingCreatedNotification is the "Booking Created" event for the owner.
func NewBookingCreatedNotification(booking *models.Booking) models.Notification {
	return models.Notification{
		User:    booking.Owner,
		Title:   "Booking Created",
		Message: "Congrats! You created a new booking",
		Type:    models.NotificationTypeSuccess,
		Link:    fmt.Sprintf("/bookings/%s", booking.ID.Hex()),
	}
}

// NewBookingStatusNotification is the event for a status transition. Anything
// past booked is an important alert.
func NewBookingStatusNotification(booking *models.Booking) models.Notification {
	notifType := models.NotificationTypeAlert
	isImportant := true
	if booking.Status == models.BookingStatusBooked {
		notifType = models.NotificationTypeSuccess
		isImportant = false
	}

	message := fmt.Sprintf("Your booking status is now %s", booking.Status)
	if booking.Message != "" {
		message = fmt.Sprintf("%s. %s", message, booking.Message)
	}

	return models.Notification{
		User:        booking.Owner,
		Title:       "Booking Updated",
		Message:     message,
		Type:        notifType,
		Link:        fmt.Sprintf("/bookings/%s", booking.ID.Hex()),
		IsImportant: isImportant,
	}
}

// NewPaymentVerifiedNotification is the "Payment Completed" event for the
// payer of a recorded payment.
func NewPaymentVerifiedNotification(payment *models.Payment) models.Notification {
	return models.Notification{
		User:        payment.User,
		Title:       "Payment Completed",
		Message:     fmt.Sprintf("Your payment status %s", payment.Status),
		Type:        models.NotificationTypeSuccess,
		Link:        "/payments",
		IsImportant: true,
	}
}

// NewPaymentFailedNotification is the event for a non-success verification
// outcome. No payment document exists; the recipient comes from the gateway's
// echoed metadata and the message carries the gateway-reported status.
func NewPaymentFailedNotification(user primitive.ObjectID, gatewayStatus string) models.Notification {
	return models.Notification{
		User:        user,
		Title:       "Payment Failed",
		Message:     fmt.Sprintf("Your payment attempt %s", gatewayStatus),
		Type:        models.NotificationTypeWarning,
		Link:        "/carts",
		IsImportant: true,
	}
}

// NewPaymentStatusNotification is the event for an administrative payment
// status change.
func NewPaymentStatusNotification(payment *models.Payment) models.Notification {
	return models.Notification{
		User:        payment.User,
		Title:       "Payment Updated",
		Message:     fmt.Sprintf("Your payment status is now %s", payment.Status),
		Type:        models.NotificationTypeInfo,
		Link:        "/payments",
		IsImportant: true,
	}
}
