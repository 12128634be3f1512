package models

import "time"

// Inquiry is a public contact-form submission handled by the back office.
type Inquiry struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Email      string     `bson:"email" json:"email"`
	Subject    string     `bson:"subject,omitempty" json:"subject,omitempty"`
	Message    string     `bson:"message" json:"message"`
	Branch     string     `bson:"branch,omitempty" json:"branch,omitempty"`
	Resolved   bool       `bson:"resolved" json:"resolved"`
	ResolvedAt *time.Time `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}
