package controllers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mega-automotives/mega_backend/models"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		major float64
		want  int64
	}{
		{500, 50000},
		{0.01, 1},
		{19.99, 1999},
		{0.1, 10},
		{1234.56, 123456},
	}

	for _, tt := range tests {
		if got := minorUnits(tt.major); got != tt.want {
			t.Errorf("minorUnits(%v) = %d, want %d", tt.major, got, tt.want)
		}
	}
}

func TestMajorUnits(t *testing.T) {
	tests := []struct {
		minor int64
		want  float64
	}{
		{50000, 500},
		{1, 0.01},
		{1999, 19.99},
		{0, 0},
	}

	for _, tt := range tests {
		if got := majorUnits(tt.minor); got != tt.want {
			t.Errorf("majorUnits(%d) = %v, want %v", tt.minor, got, tt.want)
		}
	}
}

func TestUnitsRoundTrip(t *testing.T) {
	for _, major := range []float64{500, 0.01, 19.99, 1234.56} {
		if got := majorUnits(minorUnits(major)); got != major {
			t.Errorf("round trip of %v = %v", major, got)
		}
	}
}

func TestPaymentFromVerification(t *testing.T) {
	userID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()

	data := &models.PaystackVerifyData{
		Status:    models.PaymentStatusSuccess,
		Reference: "T685312322670591",
		Amount:    50000,
		Channel:   "card",
		Metadata: models.PaystackMetadata{
			User:            userID.Hex(),
			AssignedTo:      targetID.Hex(),
			AssignedToModel: "inventory",
		},
	}

	payment, err := paymentFromVerification(data)
	if err != nil {
		t.Fatalf("paymentFromVerification returned error: %v", err)
	}
	if payment.User != userID {
		t.Errorf("User = %v, want %v", payment.User, userID)
	}
	if payment.AssignedTo != targetID {
		t.Errorf("AssignedTo = %v, want %v", payment.AssignedTo, targetID)
	}
	if payment.AssignedToModel != models.KindInventory {
		t.Errorf("AssignedToModel = %q, want %q", payment.AssignedToModel, models.KindInventory)
	}
	if payment.Amount != 500 {
		t.Errorf("Amount = %v, want 500", payment.Amount)
	}
	if payment.Method != "card" {
		t.Errorf("Method = %q, want %q", payment.Method, "card")
	}
	if payment.Status != models.PaymentStatusSuccess {
		t.Errorf("Status = %q, want %q", payment.Status, models.PaymentStatusSuccess)
	}
	if payment.Reference != data.Reference {
		t.Errorf("Reference = %q, want %q", payment.Reference, data.Reference)
	}
}

func TestPaymentFromVerificationRejects(t *testing.T) {
	valid := primitive.NewObjectID().Hex()

	tests := []struct {
		name     string
		metadata models.PaystackMetadata
	}{
		{"bad payer id", models.PaystackMetadata{User: "not-a-hex-id", AssignedTo: valid, AssignedToModel: "rental"}},
		{"bad target id", models.PaystackMetadata{User: valid, AssignedTo: "", AssignedToModel: "rental"}},
		{"unsupported kind", models.PaystackMetadata{User: valid, AssignedTo: valid, AssignedToModel: "Subservice"}},
		{"unknown kind", models.PaystackMetadata{User: valid, AssignedTo: valid, AssignedToModel: "boat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &models.PaystackVerifyData{
				Status:    models.PaymentStatusSuccess,
				Reference: "T123",
				Amount:    1000,
				Metadata:  tt.metadata,
			}
			_, err := paymentFromVerification(data)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if _, ok := err.(*models.ValidationError); !ok {
				t.Errorf("error type = %T, want *models.ValidationError", err)
			}
		})
	}
}
