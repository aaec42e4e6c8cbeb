package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses
const (
	BookingStatusBooked     = "booked"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// bookingTransitions is the adjacency table of the booking state machine.
// completed and cancelled are terminal.
var bookingTransitions = map[string][]string{
	BookingStatusBooked:     {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

// BookingEditableStatuses are the statuses during which the owner may still
// edit booking details.
var BookingEditableStatuses = []string{BookingStatusBooked, BookingStatusConfirmed}

// BookingDeletableStatuses are the statuses from which a booking may be
// deleted. in-progress and completed bookings are permanent records.
var BookingDeletableStatuses = []string{BookingStatusBooked, BookingStatusConfirmed, BookingStatusCancelled}

// ValidBookingStatus reports whether status is a member of the booking status
// enumeration.
func ValidBookingStatus(status string) bool {
	_, ok := bookingTransitions[status]
	return ok
}

// CanTransitionBooking reports whether the state machine defines an edge from
// the current status to the requested one.
func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingStatusesBefore returns every status with a defined transition into
// status. Used to express a transition as a single conditional update.
func BookingStatusesBefore(status string) []string {
	var from []string
	for current, nexts := range bookingTransitions {
		for _, next := range nexts {
			if next == status {
				from = append(from, current)
			}
		}
	}
	return from
}

// BookingEditable reports whether the owner may still edit details.
func BookingEditable(status string) bool {
	for _, s := range BookingEditableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BookingDeletable reports whether a booking in this status may be deleted.
func BookingDeletable(status string) bool {
	for _, s := range BookingDeletableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BookingSchedule holds the pick-up and drop-off slots.
type BookingSchedule struct {
	PickUp  ScheduleSlot `json:"pickUp" bson:"pickUp"`
	DropOff ScheduleSlot `json:"dropOff" bson:"dropOff"`
}

type ScheduleSlot struct {
	Date string `json:"date" bson:"date"`
	Time string `json:"time" bson:"time"`
}

// BookingPhotos holds optional before/after/license photo URLs.
type BookingPhotos struct {
	PhotoBefore string `json:"photoBefore,omitempty" bson:"photoBefore,omitempty"`
	PhotoAfter  string `json:"photoAfter,omitempty" bson:"photoAfter,omitempty"`
	License     string `json:"license,omitempty" bson:"license,omitempty"`
}

// Booking model. AssignedTo is a polymorphic reference resolved through
// AssignedToModel; documents persist the internal discriminator tag and API
// responses carry the external alias.
type Booking struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Owner           primitive.ObjectID   `json:"owner" bson:"owner"`
	Vehicles        []primitive.ObjectID `json:"vehicles,omitempty" bson:"vehicles,omitempty"`
	AssignedTo      primitive.ObjectID   `json:"assignedTo" bson:"assignedTo"`
	AssignedToModel string               `json:"assignedToModel" bson:"assignedToModel"`
	Description     string               `json:"description" bson:"description"`
	Schedule        BookingSchedule      `json:"schedule" bson:"schedule"`
	Photos          BookingPhotos        `json:"photos" bson:"photos"`
	Message         string               `json:"message,omitempty" bson:"message,omitempty"`
	Status          string               `json:"status" bson:"status"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Externalize translates the persisted discriminator tag to its API spelling.
// Applied to every booking leaving the system.
func (b *Booking) Externalize() {
	b.AssignedToModel = ExternalKind(b.AssignedToModel)
}

// BookingRequest model for creating or editing a booking. AssignedToModel
// carries the external kind alias ("service" or "rental").
type BookingRequest struct {
	Vehicles        []string        `json:"vehicles"`
	AssignedTo      string          `json:"assignedTo" validate:"required"`
	AssignedToModel string          `json:"assignedToModel" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Schedule        BookingSchedule `json:"schedule"`
	Photos          BookingPhotos   `json:"photos"`
}

// BookingStatusUpdateRequest model for staff status transitions.
type BookingStatusUpdateRequest struct {
	Status  string `json:"status" validate:"required"`
	Message string `json:"message,omitempty"`
}

// BookingResponse model
type BookingResponse struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Data    *Booking `json:"data,omitempty"`
}

// BookingsResponse model for multiple bookings
type BookingsResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Data    []Booking `json:"data,omitempty"`
	Total   int64     `json:"total"`
}

// BookingDetail is a booking with its referenced documents populated. Target
// holds the typed document for the booking's kind (*Rental or *Subservice) and
// is nil when the reference dangles.
type BookingDetail struct {
	Booking
	OwnerDetail    *User       `json:"ownerDetail,omitempty"`
	Target         interface{} `json:"target,omitempty"`
	VehicleDetails []Vehicle   `json:"vehicleDetails,omitempty"`
}
