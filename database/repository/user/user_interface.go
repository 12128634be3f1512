package userRepo

import (
	"dormhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for user profiles.
type UserRepository interface {
	Upsert(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	SetRole(id, role string) error
}
