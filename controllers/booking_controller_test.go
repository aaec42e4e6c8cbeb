package controllers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mega-automotives/mega_backend/models"
)

func TestBookingEditFilter(t *testing.T) {
	bookingID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	filter := bookingEditFilter(bookingID, ownerID)

	if filter["_id"] != bookingID {
		t.Errorf("_id = %v, want %v", filter["_id"], bookingID)
	}
	if filter["owner"] != ownerID {
		t.Errorf("owner = %v, want %v", filter["owner"], ownerID)
	}

	statusClause, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("status clause = %T, want bson.M — the editable guard must be part of the write filter", filter["status"])
	}
	in, ok := statusClause["$in"].([]string)
	if !ok {
		t.Fatalf("status clause = %v, want an $in over statuses", statusClause)
	}
	if !reflect.DeepEqual(in, models.BookingEditableStatuses) {
		t.Errorf("status $in = %v, want %v", in, models.BookingEditableStatuses)
	}
}
