package controllers

import (
	"context"
	"fmt"
	"log"
	"math"
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

// PaymentController handles the two-phase gateway reconciliation protocol and
// the administrative payment endpoints
type PaymentController struct {
	db       *mongo.Client
	paystack *services.PaystackService
	targets  *repositories.TargetRepository
	users    *repositories.UserRepository
	email    *services.EmailService
}

// NewPaymentController creates a new payment controller
func NewPaymentController(db *mongo.Client, paystack *services.PaystackService, email *services.EmailService) *PaymentController {
	return &PaymentController{
		db:       db,
		paystack: paystack,
		targets:  repositories.NewTargetRepository(db),
		users:    repositories.NewUserRepository(db),
		email:    email,
	}
}

func (c *PaymentController) collection() *mongo.Collection {
	return config.GetCollection(c.db, "payments")
}

// minorUnits converts a major-unit amount to the gateway's integer minor
// units. Applied exactly once, on the way out.
func minorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

// majorUnits converts a gateway-reported minor-unit amount back to major
// units. Applied exactly once, on the way in.
func majorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// paymentFromVerification constructs the Payment document recorded for a
// successful verification: payer and target from the gateway's echoed
// metadata, amount converted back to major units, channel as the method.
func paymentFromVerification(data *models.PaystackVerifyData) (*models.Payment, error) {
	userID, err := primitive.ObjectIDFromHex(data.Metadata.User)
	if err != nil {
		return nil, &models.ValidationError{Message: "Invalid payer in gateway metadata"}
	}

	targetID, err := primitive.ObjectIDFromHex(data.Metadata.AssignedTo)
	if err != nil {
		return nil, &models.ValidationError{Message: "Invalid target in gateway metadata"}
	}

	kind, ok := models.InternalKind(data.Metadata.AssignedToModel, models.PayableKinds)
	if !ok {
		return nil, &models.ValidationError{
			Message: fmt.Sprintf("Unsupported payment target kind %q", data.Metadata.AssignedToModel),
		}
	}

	now := time.Now()
	return &models.Payment{
		ID:              primitive.NewObjectID(),
		User:            userID,
		AssignedTo:      targetID,
		AssignedToModel: kind,
		Amount:          majorUnits(data.Amount),
		Reference:       data.Reference,
		Method:          data.Channel,
		Status:          models.PaymentStatusSuccess,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// InitializePayment starts phase one: the amount is converted to minor units
// and submitted to the gateway with the target encoded as metadata. Nothing is
// persisted; the gateway's reference and redirect handle go back to the
// caller.
func (c *PaymentController) InitializePayment(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return ctx.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var request models.InitializePaymentRequest
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

	kind, ok := models.InternalKind(request.AssignedToModel, models.PayableKinds)
	if !ok {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("Unsupported payment target kind %q", request.AssignedToModel),
		})
	}

	targetID, err := primitive.ObjectIDFromHex(request.AssignedTo)
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid target ID"})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.targets.Exists(reqCtx, kind, targetID, models.PayableKinds); err != nil {
		return errorJSON(ctx, err)
	}

	metadata := models.PaystackMetadata{
		User:            claims.UserID,
		AssignedTo:      request.AssignedTo,
		AssignedToModel: kind,
	}

	data, err := c.paystack.InitializeTransaction(claims.Email, minorUnits(request.Amount), metadata)
	if err != nil {
		log.Printf("Payment initialization failed: %v", err)
		return ctx.JSON(http.StatusBadGateway, models.Response{
			Status:  http.StatusBadGateway,
			Message: "Failed to initialize payment",
		})
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment initialized successfully",
		Data:    data,
	})
}

// VerifyPayment completes phase two. The gateway's verification is
// authoritative and idempotent; a payment document is created only for a
// success outcome, and the unique reference index turns a concurrent second
// recording into a conflict rather than a duplicate.
func (c *PaymentController) VerifyPayment(ctx echo.Context) error {
	reference := ctx.Param("reference")
	if reference == "" {
		return errorJSON(ctx, &models.ValidationError{Message: "Missing payment reference"})
	}

	data, err := c.paystack.VerifyTransaction(reference)
	if err != nil {
		log.Printf("Payment verification call failed: %v", err)
		return ctx.JSON(http.StatusBadGateway, models.Response{
			Status:  http.StatusBadGateway,
			Message: "Failed to verify payment",
		})
	}

	if data.Status != models.PaymentStatusSuccess {
		// No document for a failed transaction; only the warning to the payer
		// recorded in the gateway's echoed metadata.
		if payerID, idErr := primitive.ObjectIDFromHex(data.Metadata.User); idErr == nil {
			if err := utils.SaveNotification(c.db, utils.NewPaymentFailedNotification(payerID, data.Status)); err != nil {
				log.Printf("Failed to save payment-failed notification: %v", err)
			}
		}
		return errorJSON(ctx, &models.PaymentAPIError{
			Message: fmt.Sprintf("Payment verification %s", data.Status),
		})
	}

	payment, err := paymentFromVerification(data)
	if err != nil {
		return errorJSON(ctx, err)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := c.collection().InsertOne(reqCtx, payment); err != nil {
		if models.IsDuplicateKey(err) {
			return ctx.JSON(http.StatusConflict, models.Response{
				Status:  http.StatusConflict,
				Message: "Payment with this reference has already been recorded",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to record payment",
		})
	}

	if err := utils.SaveNotification(c.db, utils.NewPaymentVerifiedNotification(payment)); err != nil {
		log.Printf("Failed to save payment-verified notification: %v", err)
	}
	// The gateway is the source of truth for the payer's address.
	if err := c.email.SendPaymentVerificationMail(data.Customer.Email, payment); err != nil {
		log.Printf("Failed to send payment-verification email: %v", err)
	}

	payment.Externalize()
	return ctx.JSON(http.StatusOK, models.PaymentResponse{
		Status:  http.StatusOK,
		Message: "Payment recorded successfully",
		Data:    payment,
	})
}

// GetMyPayments retrieves the authenticated payer's payments
func (c *PaymentController) GetMyPayments(ctx echo.Context) error {
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

	return c.listPayments(ctx, bson.M{"user": userID})
}

// GetPayments retrieves all payments (admin)
func (c *PaymentController) GetPayments(ctx echo.Context) error {
	return c.listPayments(ctx, bson.M{})
}

// GetPaymentsByUser retrieves one payer's payments (admin)
func (c *PaymentController) GetPaymentsByUser(ctx echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid user ID"})
	}
	return c.listPayments(ctx, bson.M{"user": userID})
}

// SearchPaymentsByReference searches payments by gateway reference (admin)
func (c *PaymentController) SearchPaymentsByReference(ctx echo.Context) error {
	reference := ctx.QueryParam("reference")
	if reference == "" {
		return errorJSON(ctx, &models.ValidationError{Message: "Missing reference query parameter"})
	}
	return c.listPayments(ctx, bson.M{"$text": bson.M{"$search": reference}})
}

// GetPayment retrieves one payment, populated (admin)
func (c *PaymentController) GetPayment(ctx echo.Context) error {
	paymentID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid payment ID"})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var payment models.Payment
	err = c.collection().FindOne(reqCtx, bson.M{"_id": paymentID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errorJSON(ctx, &models.NotFoundError{Message: "Payment not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error retrieving payment",
		})
	}

	detail := models.PaymentDetail{Payment: payment}
	detail.Target = c.targets.Populate(reqCtx, payment.AssignedToModel, payment.AssignedTo)
	if user, err := c.users.FindByID(reqCtx, payment.User); err == nil {
		detail.UserDetail = user
	}
	detail.Externalize()

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment retrieved successfully",
		Data:    detail,
	})
}

// UpdatePaymentStatus applies an administrative status change and notifies the
// payer via notification and email.
func (c *PaymentController) UpdatePaymentStatus(ctx echo.Context) error {
	paymentID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid payment ID"})
	}

	var request models.PaymentStatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	if !models.ValidPaymentStatus(request.Status) {
		return errorJSON(ctx, &models.ValidationError{
			Message: fmt.Sprintf("Invalid payment status %q", request.Status),
		})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    request.Status,
		"updatedAt": time.Now(),
	}}

	var payment models.Payment
	err = c.collection().FindOneAndUpdate(reqCtx, bson.M{"_id": paymentID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errorJSON(ctx, &models.NotFoundError{Message: "Payment not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update payment status",
		})
	}

	if err := utils.SaveNotification(c.db, utils.NewPaymentStatusNotification(&payment)); err != nil {
		log.Printf("Failed to save payment-status notification: %v", err)
	}
	if user, err := c.users.FindByID(reqCtx, payment.User); err != nil {
		log.Printf("Failed to load payer for payment-status email: %v", err)
	} else if err := c.email.SendPaymentStatusMail(user, &payment); err != nil {
		log.Printf("Failed to send payment-status email: %v", err)
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment status updated successfully",
	})
}

// DeletePayment removes a payment record (admin)
func (c *PaymentController) DeletePayment(ctx echo.Context) error {
	paymentID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, &models.ValidationError{Message: "Invalid payment ID"})
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = c.collection().FindOneAndDelete(reqCtx, bson.M{"_id": paymentID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errorJSON(ctx, &models.NotFoundError{Message: "Payment not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete payment",
		})
	}

	return ctx.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment record deleted successfully",
	})
}

func (c *PaymentController) listPayments(ctx echo.Context, filter bson.M) error {
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
			Message: "Error retrieving payments",
		})
	}
	defer cursor.Close(reqCtx)

	var payments []models.Payment
	if err := cursor.All(reqCtx, &payments); err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding payments",
		})
	}

	total, err := c.collection().CountDocuments(reqCtx, filter)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error counting payments",
		})
	}

	for i := range payments {
		payments[i].Externalize()
	}

	return ctx.JSON(http.StatusOK, models.PaymentsResponse{
		Status:  http.StatusOK,
		Message: "Payments retrieved successfully",
		Data:    payments,
		Total:   total,
	})
}
