package utils

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mega-automotives/mega_backend/models"
)

func TestNewBookingCreatedNotification(t *testing.T) {
	booking := &models.Booking{
		ID:    primitive.NewObjectID(),
		Owner: primitive.NewObjectID(),
	}

	n := NewBookingCreatedNotification(booking)
	if n.User != booking.Owner {
		t.Errorf("User = %v, want owner %v", n.User, booking.Owner)
	}
	if n.Type != models.NotificationTypeSuccess {
		t.Errorf("Type = %q, want %q", n.Type, models.NotificationTypeSuccess)
	}
	if n.IsImportant {
		t.Error("IsImportant = true, want false for creation event")
	}
	if n.Link != "/bookings/"+booking.ID.Hex() {
		t.Errorf("Link = %q", n.Link)
	}
}

func TestNewBookingStatusNotification(t *testing.T) {
	tests := []struct {
		status        string
		message       string
		wantType      string
		wantImportant bool
		wantContains  string
	}{
		{models.BookingStatusBooked, "", models.NotificationTypeSuccess, false, "Your booking status is now booked"},
		{models.BookingStatusConfirmed, "", models.NotificationTypeAlert, true, "Your booking status is now confirmed"},
		{models.BookingStatusCancelled, "client request", models.NotificationTypeAlert, true, "Your booking status is now cancelled. client request"},
		{models.BookingStatusCompleted, "", models.NotificationTypeAlert, true, "Your booking status is now completed"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := &models.Booking{
				ID:      primitive.NewObjectID(),
				Owner:   primitive.NewObjectID(),
				Status:  tt.status,
				Message: tt.message,
			}

			n := NewBookingStatusNotification(booking)
			if n.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", n.Type, tt.wantType)
			}
			if n.IsImportant != tt.wantImportant {
				t.Errorf("IsImportant = %v, want %v", n.IsImportant, tt.wantImportant)
			}
			if !strings.Contains(n.Message, tt.wantContains) {
				t.Errorf("Message = %q, want it to contain %q", n.Message, tt.wantContains)
			}
		})
	}
}

func TestNewPaymentVerifiedNotification(t *testing.T) {
	payment := &models.Payment{
		User:   primitive.NewObjectID(),
		Status: models.PaymentStatusSuccess,
	}

	n := NewPaymentVerifiedNotification(payment)
	if n.Title != "Payment Completed" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.Type != models.NotificationTypeSuccess {
		t.Errorf("Type = %q, want %q", n.Type, models.NotificationTypeSuccess)
	}
	if !n.IsImportant {
		t.Error("IsImportant = false, want true")
	}
	if n.Link != "/payments" {
		t.Errorf("Link = %q, want /payments", n.Link)
	}
}

func TestNewPaymentFailedNotification(t *testing.T) {
	userID := primitive.NewObjectID()

	n := NewPaymentFailedNotification(userID, "abandoned")
	if n.User != userID {
		t.Errorf("User = %v, want %v", n.User, userID)
	}
	if n.Title != "Payment Failed" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.Type != models.NotificationTypeWarning {
		t.Errorf("Type = %q, want %q", n.Type, models.NotificationTypeWarning)
	}
	if !n.IsImportant {
		t.Error("IsImportant = false, want true")
	}
	if n.Link != "/carts" {
		t.Errorf("Link = %q, want /carts", n.Link)
	}
	if !strings.Contains(n.Message, "abandoned") {
		t.Errorf("Message = %q, want gateway status included", n.Message)
	}
}

func TestNewPaymentStatusNotification(t *testing.T) {
	payment := &models.Payment{
		User:   primitive.NewObjectID(),
		Status: models.PaymentStatusRefunded,
	}

	n := NewPaymentStatusNotification(payment)
	if n.Type != models.NotificationTypeInfo {
		t.Errorf("Type = %q, want %q", n.Type, models.NotificationTypeInfo)
	}
	if !n.IsImportant {
		t.Error("IsImportant = false, want true")
	}
	if !strings.Contains(n.Message, "refunded") {
		t.Errorf("Message = %q", n.Message)
	}
}
