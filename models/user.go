package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleCustomer         = "customer"
	RoleAdministrator    = "administrator"
	RoleTechnician       = "service-technician"
	RoleInsuranceCompany = "insurance-company"
)

// StaffRoles are the roles excluded from owner searches and permitted to drive
// booking status transitions.
var StaffRoles = []string{RoleAdministrator, RoleTechnician}

// UserName holds the split name fields; both are text-indexed for owner search.
type UserName struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// User model
type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       UserName           `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Photo      string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role       string             `json:"role" bson:"role"`
	IsVerified bool               `json:"isVerified" bson:"isVerified"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
