package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleGuest     = "guest"
	RoleHost      = "host"
	RoleAdmin     = "admin"
	RoleRequested = "Requested" // pending admin approval

	StatusVerified  = "Verified"
	StatusRequested = "Requested" // guest asked to become a host
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email" binding:"required,email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty" binding:"omitempty,oneof=guest host admin Requested"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"` // unix millis
}

// UserUpdate carries the fields an admin (or the user) may change.
// Nil fields are left untouched.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Image  *string `json:"image,omitempty"`
	Role   *string `json:"role,omitempty" binding:"omitempty,oneof=guest host admin Requested"`
	Status *string `json:"status,omitempty"`
}
