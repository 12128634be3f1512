package room

import (
	"dormhub/models"
)

// RoomService manages the room catalogue for both branches.
type RoomService interface {
	Create(room *models.Room) (*models.Room, error)
	Update(room *models.Room) (*models.Room, error)
	Delete(id string) error
	GetByID(id string) (*models.Room, error)
	List(filter models.RoomFilter) ([]models.Room, error)
	Occupancy(filter models.RoomFilter) ([]models.OccupancyReport, error)
}
