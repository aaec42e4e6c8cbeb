package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mega-automotives/mega_backend/config"
	"github.com/mega-automotives/mega_backend/middleware"
	"github.com/mega-automotives/mega_backend/models"
	"github.com/mega-automotives/mega_backend/repositories"
	"github.com/mega-automotives/mega_backend/services"
	"github.com/mega-automotives/mega_backend/utils"
)

// BookingController handles booking-related API endpoints
type BookingController struct {
	db      *mongo.Client
	targets *repositories.TargetRepository
	users   *repositories.UserRepository
	email   *services.EmailService
}

// NewBookingController creates a new booking controller
func NewBookingController(db *mongo.Client, email *services.EmailService) *BookingController {
	return &BookingController{
		db:      db,
		targets: repositories.NewTargetRepository(db),
		users:   repositories.NewUserRepository(db),
		email:   email,
	}
}

func (c *BookingController) collection() *mongo.Collection {
	return config.GetCollection(c.db, "bookings")
}

// CreateBooking handles the creation of a new booking
func (c *BookingController) CreateBooking(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var request models.BookingRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	// The discriminator is validated against the Bookable set before any
	// store access; the API carries the external alias.
	kind, ok := models.InternalKind(request.AssignedToModel, models.BookableKinds)
	if !ok {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("Unsupported booking target kind %q", request.AssignedToModel),
		})
	}

	targetID, err := primitive.ObjectIDFromHex(request.AssignedTo)
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid target ID"})
	}

	var vehicles []primitive.ObjectID
	for _, v := range request.Vehicles {
		vehicleID, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return errorJSON(ctx, &models.ValidationError{Message: "Invalid vehicle ID"})
		}
		vehicles = append(vehicles, vehicleID)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Resolution fails closed: no booking against a missing target.
	if err := c.targets.Exists(reqCtx, kind, targetID, models.BookableKinds); err != nil {
		return errorJSON(ctx, err)
	}

	owner, err := c.users.FindByID(reqCtx, ownerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	now := time.Now()
	booking := models.Booking{
		ID:              primitive.NewObjectID(),
		Owner:           ownerID,
		Vehicles:        vehicles,
		AssignedTo:      targetID,
		AssignedToModel: kind,
		Description:     request.Description,
		Schedule:        request.Schedule,
		Photos:          request.Photos,
		Status:          models.BookingStatusBooked,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := c.collection().InsertOne(reqCtx, booking); err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create booking",
		})
	}

	// Side effects fire only after the committed insert and never fail it.
	if err := utils.SaveNotification(c.db, utils.NewBookingCreatedNotification(&booking)); err != nil {
		log.Printf("Failed to save booking-created notification: %v", err)
	}
	if err := c.email.SendNewBookingMail(owner, &booking); err != nil {
		log.Printf("Failed to send new-booking email: %v", err)
	}

	booking.Externalize()
	return ctx.JSON(http.StatusCreated, models.BookingResponse{
		Status:  http.StatusCreated,
		Message: "Booking placed successfully",
		Data:    &booking,
	})
}

// GetMyBookings retrieves the authenticated owner's bookings
func (c *BookingController) GetMyBookings(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	return c.listBookings(ctx, bson.M{"owner": ownerID})
}

// GetMyBooking retrieves one of the authenticated owner's bookings, populated.
// A foreign booking id reads as absent.
func (c *BookingController) GetMyBooking(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	bookingID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid booking ID"})
	}

	return c.getBookingDetail(ctx, bson.M{"_id": bookingID, "owner": ownerID})
}

// GetBookings retrieves all bookings (staff)
func (c *BookingController) GetBookings(ctx echo.Context) error {
	return c.listBookings(ctx, bson.M{})
}

// GetBookingsByStatus retrieves all bookings with the given status (staff)
func (c *BookingController) GetBookingsByStatus(ctx echo.Context) error {
	status := ctx.Param("status")
	if !models.ValidBookingStatus(status) {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("Invalid booking status %q", status),
		})
	}
	return c.listBookings(ctx, bson.M{"status": status})
}

// GetBookingsByOwner retrieves all bookings of one owner (staff)
func (c *BookingController) GetBookingsByOwner(ctx echo.Context) error {
	ownerID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid owner ID"})
	}
	return c.listBookings(ctx, bson.M{"owner": ownerID})
}

// SearchBookingsByOwner resolves an owner name to bookings (staff). No
// referential join exists between users and bookings, so this runs two
// sequential queries: name to non-staff owner ids, then bookings whose owner
// is in that set.
func (c *BookingController) SearchBookingsByOwner(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	callerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	name := ctx.QueryParam("name")
	if name == "" {
		return errorJSON(ctx, &models.ValidationError{Message: "Missing name query parameter"})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ownerIDs, err := c.users.SearchOwnerIDs(reqCtx, name, callerID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error searching owners",
		})
	}

	return c.listBookings(ctx, bson.M{"owner": bson.M{"$in": ownerIDs}})
}

// GetBookingByID retrieves one booking, populated (staff)
func (c *BookingController) GetBookingByID(ctx echo.Context) error {
	bookingID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid booking ID"})
	}
	return c.getBookingDetail(ctx, bson.M{"_id": bookingID})
}

// UpdateBooking lets the owner edit details while the booking is still
// editable. Another owner's booking reads as absent, never as forbidden.
func (c *BookingController) UpdateBooking(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	bookingID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid booking ID"})
	}

	var request models.BookingRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	kind, ok := models.InternalKind(request.AssignedToModel, models.BookableKinds)
	if !ok {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("Unsupported booking target kind %q", request.AssignedToModel),
		})
	}

	targetID, err := primitive.ObjectIDFromHex(request.AssignedTo)
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid target ID"})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var current models.Booking
	err = c.collection().FindOne(reqCtx, bson.M{"_id": bookingID, "owner": ownerID}).Decode(&current)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errorJSON(ctx, &models.NotFoundError{Message: "Booking not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error retrieving booking",
		})
	}

	if !models.BookingEditable(current.Status) {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("This booking has already been %s", current.Status),
		})
	}

	if err := c.targets.Exists(reqCtx, kind, targetID, models.BookableKinds); err != nil {
		return errorJSON(ctx, err)
	}

	update := bson.M{"$set": bson.M{
		"assignedTo":      targetID,
		"assignedToModel": kind,
		"description":     request.Description,
		"schedule":        request.Schedule,
		"photos":          request.Photos,
		"updatedAt":       time.Now(),
	}}

	// The editable guard is part of the update filter, so a concurrent staff
	// transition cannot slip between the check above and the write.
	result, err := c.collection().UpdateOne(reqCtx, bookingEditFilter(bookingID, ownerID), update)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update booking",
		})
	}
	if result.MatchedCount == 0 {
		var existing models.Booking
		findErr := c.collection().FindOne(reqCtx, bson.M{"_id": bookingID, "owner": ownerID}).Decode(&existing)
		if findErr == nil {
			return errorJSON(ctx, &models.ValidationError{
				Message: fmt.Sprintf("This booking has already been %s", existing.Status),
			})
		}
		return errorJSON(ctx, &models.NotFoundError{Message: "Booking not found"})
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Booking details updated successfully",
	})
}

// bookingEditFilter matches an owner's booking only while its status still
// permits edits.
func bookingEditFilter(bookingID, ownerID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    bookingID,
		"owner":  ownerID,
		"status": bson.M{"$in": models.BookingEditableStatuses},
	}
}

// UpdateBookingStatus applies a staff status transition. The adjacency table
// is enforced inside the update filter, so two racing requests cannot both
// apply mutually exclusive transitions; the loser finds no matching document.
func (c *BookingController) UpdateBookingStatus(ctx echo.Context) error {
	bookingID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid booking ID"})
	}

	var request models.BookingStatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	if !models.ValidBookingStatus(request.Status) {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("Invalid booking status %q", request.Status),
		})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":    bookingID,
		"status": bson.M{"$in": models.BookingStatusesBefore(request.Status)},
	}
	update := bson.M{"$set": bson.M{
		"status":    request.Status,
		"message":   request.Message,
		"updatedAt": time.Now(),
	}}

	var booking models.Booking
	err = c.collection().FindOneAndUpdate(reqCtx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errorJSON(ctx, c.diagnoseTransition(reqCtx, bookingID, request.Status))
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update booking status",
		})
	}

	if err := utils.SaveNotification(c.db, utils.NewBookingStatusNotification(&booking)); err != nil {
		log.Printf("Failed to save booking-status notification: %v", err)
	}
	if owner, err := c.users.FindByID(reqCtx, booking.Owner); err != nil {
		log.Printf("Failed to load owner for booking-status email: %v", err)
	} else if err := c.email.SendBookingStatusMail(owner, &booking); err != nil {
		log.Printf("Failed to send booking-status email: %v", err)
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Booking status updated successfully",
	})
}

// DeleteBooking deletes a booking regardless of owner (staff)
func (c *BookingController) DeleteBooking(ctx echo.Context) error {
	bookingID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid booking ID"})
	}
	return c.deleteBooking(ctx, bson.M{"_id": bookingID})
}

// DeleteMyBooking deletes one of the authenticated owner's bookings. The owner
// is part of the delete filter, so a known foreign id cannot be deleted.
func (c *BookingController) DeleteMyBooking(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	bookingID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid booking ID"})
	}

	return c.deleteBooking(ctx, bson.M{"_id": bookingID, "owner": ownerID})
}

// deleteBooking runs one atomic guarded delete; only bookings in a deletable
// status match. A miss is diagnosed afterwards to name the blocking status.
func (c *BookingController) deleteBooking(ctx echo.Context, filter bson.M) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	guarded := bson.M{"status": bson.M{"$in": models.BookingDeletableStatuses}}
	for k, v := range filter {
		guarded[k] = v
	}

	err := c.collection().FindOneAndDelete(reqCtx, guarded).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			var existing models.Booking
			findErr := c.collection().FindOne(reqCtx, filter).Decode(&existing)
			if findErr == nil {
				return errorJSON(ctx, &models.ValidationError{
					Message: fmt.Sprintf("This booking is %s and cannot be deleted", existing.Status),
				})
			}
			return errorJSON(ctx, &models.NotFoundError{Message: "Booking not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete booking",
		})
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Booking deleted successfully",
	})
}

// diagnoseTransition explains why the guarded status update matched nothing.
func (c *BookingController) diagnoseTransition(reqCtx context.Context, bookingID primitive.ObjectID, newStatus string) error {
	var existing models.Booking
	err := c.collection().FindOne(reqCtx, bson.M{"_id": bookingID}).Decode(&existing)
	if err != nil {
		return &models.NotFoundError{Message: "Booking not found"}
	}
	return &models.ValidationError{
		Message: fmt.Sprintf("Cannot transition booking from %s to %s", existing.Status, newStatus),
	}
}

func (c *BookingController) listBookings(ctx echo.Context, filter bson.M) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	skip, limit := pagination(ctx)
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := c.collection().Find(reqCtx, filter, opts)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error retrieving bookings",
		})
	}
	defer cursor.Close(reqCtx)

	var bookings []models.Booking
	if err := cursor.All(reqCtx, &bookings); err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding bookings",
		})
	}

	total, err := c.collection().CountDocuments(reqCtx, filter)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error counting bookings",
		})
	}

	for i := range bookings {
		bookings[i].Externalize()
	}

	return ctx.JSON(http.StatusOK, models.BookingsResponse{
		Status:  http.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
		Total:   total,
	})
}

// getBookingDetail fetches one booking with its owner and target populated.
// A dangling target reference reports a null target rather than an error.
func (c *BookingController) getBookingDetail(ctx echo.Context, filter bson.M) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var booking models.Booking
	err := c.collection().FindOne(reqCtx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errorJSON(ctx, &models.NotFoundError{Message: "Booking not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error retrieving booking",
		})
	}

	detail := models.BookingDetail{Booking: booking}
	detail.Target = c.targets.Populate(reqCtx, booking.AssignedToModel, booking.AssignedTo)
	if owner, err := c.users.FindByID(reqCtx, booking.Owner); err == nil {
		detail.OwnerDetail = owner
	}
	if len(booking.Vehicles) > 0 {
		vehicleFilter := bson.M{"_id": bson.M{"$in": booking.Vehicles}}
		if cursor, err := config.GetCollection(c.db, "vehicles").Find(reqCtx, vehicleFilter); err == nil {
			var vehicles []models.Vehicle
			if err := cursor.All(reqCtx, &vehicles); err == nil {
				detail.VehicleDetails = vehicles
			}
		}
	}
	detail.Externalize()

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Booking retrieved successfully",
		Data:    detail,
	})
}
