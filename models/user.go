package models

import "time"

// User roles. Role checks are simple string comparisons.
const (
	RoleTenant = "tenant"
	RoleAdmin  = "admin"
)

// User mirrors a Firebase account with the profile fields the business
// records need. ID is the Firebase UID.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	DisplayName  string    `bson:"display_name,omitempty" json:"display_name,omitempty"`
	FirstName    string    `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName     string    `bson:"last_name,omitempty" json:"last_name,omitempty"`
	MobileNumber string    `bson:"mobile_number,omitempty" json:"mobile_number,omitempty"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role         string    `bson:"role" json:"role"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"fcm_token,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
