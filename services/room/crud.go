package room

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	roomRepo "dormhub/database/repository/room"
	"dormhub/models"
	"dormhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cached listing TTL. Writes invalidate eagerly, the TTL is a backstop.
const listingCacheTTL = 5 * time.Minute

const listingCachePrefix = "rooms:list:"

// DefaultRoomService is the production RoomService.
type DefaultRoomService struct {
	Repo  roomRepo.RoomRepository
	Cache *redis.Client
}

func validateRoom(r *models.Room) error {
	if r.Name == "" {
		return &ErrInvalidRoom{Reason: "name is required"}
	}
	if r.Branch != models.BranchGilPuyat && r.Branch != models.BranchGuadalupe {
		return &ErrInvalidRoom{Reason: "branch must be gil-puyat or guadalupe"}
	}
	if r.Capacity <= 0 {
		return &ErrInvalidRoom{Reason: "capacity must be positive"}
	}
	if r.Price < 0 {
		return &ErrInvalidRoom{Reason: "price cannot be negative"}
	}
	if len(r.Beds) > r.Capacity {
		return &ErrInvalidRoom{Reason: fmt.Sprintf("%d beds exceed capacity %d", len(r.Beds), r.Capacity)}
	}
	return nil
}

// Create validates and stores a new room. Bed slots get generated ids when
// omitted.
func (s *DefaultRoomService) Create(room *models.Room) (*models.Room, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	room.ID = uuid.New().String()
	for i := range room.Beds {
		if room.Beds[i].ID == "" {
			room.Beds[i].ID = uuid.New().String()
		}
	}
	if err := s.Repo.Create(room); err != nil {
		return nil, err
	}
	s.invalidateListings()
	return room, nil
}

// Update validates and stores room changes.
func (s *DefaultRoomService) Update(room *models.Room) (*models.Room, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetByID(room.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &ErrNotFound{ID: room.ID}
	}
	room.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(room); err != nil {
		return nil, err
	}
	s.invalidateListings()
	return room, nil
}

// Delete removes a room from the catalogue.
func (s *DefaultRoomService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateListings()
	return nil
}

// GetByID loads a single room.
func (s *DefaultRoomService) GetByID(id string) (*models.Room, error) {
	room, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &ErrNotFound{ID: id}
	}
	return room, nil
}

// List returns rooms matching the filter, served from the Redis cache
// when possible. Cache failures degrade to a direct database read.
func (s *DefaultRoomService) List(filter models.RoomFilter) ([]models.Room, error) {
	ctx := context.Background()
	key := listingCacheKey(filter)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var rooms []models.Room
			if err := json.Unmarshal([]byte(data), &rooms); err == nil {
				return rooms, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("room listing cache read failed", zap.Error(err))
		}
	}

	rooms, err := s.Repo.GetAll(filter)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(rooms); err == nil {
			if err := s.Cache.Set(ctx, key, data, listingCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("room listing cache write failed", zap.Error(err))
			}
		}
	}
	return rooms, nil
}

func listingCacheKey(filter models.RoomFilter) string {
	return fmt.Sprintf("%s%s:%s:%.2f:%t",
		listingCachePrefix, filter.Branch, filter.Type, filter.MaxPrice, filter.AvailableOnly)
}

// invalidateListings drops all cached room listings after a write.
func (s *DefaultRoomService) invalidateListings() {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	iter := s.Cache.Scan(ctx, 0, listingCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("room listing cache invalidation failed", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("room listing cache scan failed", zap.Error(err))
	}
}
