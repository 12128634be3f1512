package reservationRepo

import (
	"dormhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(res *models.Reservation) error
	Update(res *models.Reservation) error
	Delete(id string) error
	GetByID(id string) (*models.Reservation, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Reservation, error)
	GetByTenant(tenantID string) ([]models.Reservation, error)
	GetAll(filter models.ReservationFilter) ([]models.Reservation, error)
	GetApprovedVisitsBetween(from, to int64) ([]models.Reservation, error)
}
