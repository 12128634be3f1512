package roomRepo

import (
	"dormhub/models"
)

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(room *models.Room) error
	Update(room *models.Room) error
	Delete(id string) error
	DeleteByBranch(branch string) (int64, error)
	GetByID(id string) (*models.Room, error)
	GetAll(filter models.RoomFilter) ([]models.Room, error)
	SetBedOccupied(roomID, bedID string, occupied bool) error
}
