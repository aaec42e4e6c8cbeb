package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusSuccess  = "success"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

var paymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusSuccess,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// ValidPaymentStatus reports whether status is a member of the payment status
// enumeration.
func ValidPaymentStatus(status string) bool {
	for _, s := range paymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Payment model. A document exists only for verified gateway transactions;
// Amount is in major currency units, Reference is the gateway's unique
// transaction identifier and the idempotency key for recording.
type Payment struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User            primitive.ObjectID `json:"user" bson:"user"`
	AssignedTo      primitive.ObjectID `json:"assignedTo" bson:"assignedTo"`
	AssignedToModel string             `json:"assignedToModel" bson:"assignedToModel"`
	Amount          float64            `json:"amount" bson:"amount"`
	Reference       string             `json:"reference" bson:"reference"`
	Method          string             `json:"method" bson:"method"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Externalize translates the persisted discriminator tag to its API spelling.
func (p *Payment) Externalize() {
	p.AssignedToModel = ExternalKind(p.AssignedToModel)
}

// InitializePaymentRequest model. Amount is in major currency units;
// AssignedToModel carries the external kind alias.
type InitializePaymentRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	AssignedTo      string  `json:"assignedTo" validate:"required"`
	AssignedToModel string  `json:"assignedToModel" validate:"required"`
}

// PaymentStatusUpdateRequest model for administrative status changes.
type PaymentStatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// PaymentResponse model
type PaymentResponse struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Data    *Payment `json:"data,omitempty"`
}

// PaymentsResponse model for multiple payments
type PaymentsResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Data    []Payment `json:"data,omitempty"`
	Total   int64     `json:"total"`
}

// PaymentDetail is a payment with its referenced documents populated. Target
// holds the typed document for the payment's kind (*Inventory, *Service or
// *Rental) and is nil when the reference dangles.
type PaymentDetail struct {
	Payment
	UserDetail *User       `json:"userDetail,omitempty"`
	Target     interface{} `json:"target,omitempty"`
}
