package roomRepo

import (
	"context"
	"fmt"
	"time"

	"dormhub/database"
	"dormhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	coll := database.MongoClient.Database(database.Name).Collection("rooms")
	repo := &MongoRoomRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create room indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "branch", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update modifies an existing room document.
func (r *MongoRoomRepo) Update(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	room.UpdatedAt = time.Now()
	filter := bson.M{"id": room.ID}
	update := bson.M{"$set": room}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", room.ID)
	}
	return nil
}

// Delete removes a room document by its ID.
func (r *MongoRoomRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}

// DeleteByBranch removes all rooms of a branch, or every room when branch
// is empty. Returns the number of deleted documents.
func (r *MongoRoomRepo) DeleteByBranch(branch string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if branch != "" {
		query["branch"] = branch
	}

	result, err := r.coll.DeleteMany(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rooms: %w", err)
	}
	return result.DeletedCount, nil
}

// GetByID retrieves a room by its unique ID.
func (r *MongoRoomRepo) GetByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

// GetAll retrieves rooms matching the given filter.
func (r *MongoRoomRepo) GetAll(filter models.RoomFilter) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Branch != "" {
		query["branch"] = filter.Branch
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.MaxPrice > 0 {
		query["price"] = bson.M{"$lte": filter.MaxPrice}
	}
	if filter.AvailableOnly {
		query["available"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "branch", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// SetBedOccupied flips the occupied flag of a single bed in a room.
func (r *MongoRoomRepo) SetBedOccupied(roomID, bedID string, occupied bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": roomID, "beds.id": bedID}
	update := bson.M{"$set": bson.M{
		"beds.$.occupied": occupied,
		"updated_at":      time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update bed %s in room %s: %w", bedID, roomID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("bed %s in room %s not found", bedID, roomID)
	}
	return nil
}
