package controllers

import (
	"context"
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
)

// NotificationController handles the notification read/ack endpoints
type NotificationController struct {
	db *mongo.Client
}

func NewNotificationController(db *mongo.Client) *NotificationController {
	return &NotificationController{db: db}
}

func (nc *NotificationController) collection() *mongo.Collection {
	return config.GetCollection(nc.db, "notifications")
}

// GetMyNotifications lists the caller's notifications together with the
// "general" broadcast type, newest first.
func (nc *NotificationController) GetMyNotifications(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"user": userID},
		{"type": models.NotificationTypeGeneral},
	}}

	skip, limit := pagination(ctx)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := nc.collection().Find(reqCtx, filter, opts)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error retrieving notifications",
		})
	}
	defer cursor.Close(reqCtx)

	var notifications []models.Notification
	if err := cursor.All(reqCtx, &notifications); err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding notifications",
		})
	}

	total, err := nc.collection().CountDocuments(reqCtx, filter)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error counting notifications",
		})
	}

	return ctx.JSON(http.StatusOK, models.NotificationsResponse{
		Status:  http.StatusOK,
		Message: "Notifications retrieved successfully",
		Data:    notifications,
		Total:   total,
	})
}

// MarkNotificationRead flips one of the caller's notifications to read. The
// recipient is part of the update filter; someone else's notification reads as
// absent.
func (nc *NotificationController) MarkNotificationRead(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	notificationID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid notification ID"})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.NotificationStatusRead,
		"updatedAt": time.Now(),
	}}

	result, err := nc.collection().UpdateOne(reqCtx, bson.M{"_id": notificationID, "user": userID}, update)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update notification",
		})
	}
	if result.MatchedCount == 0 {
		return errorJSON(ctx, &models.NotFoundError{Message: "Notification not found"})
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification marked as read",
	})
}
