package reservationRepo

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

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.MongoClient.Database(database.Name).Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reservation indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "room.branch", Value: 1}}},
		{Keys: bson.D{{Key: "visit_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new reservation document.
func (r *MongoReservationRepo) Create(res *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, res)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing reservation document.
func (r *MongoReservationRepo) Update(res *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res.UpdatedAt = time.Now()
	filter := bson.M{"id": res.ID}
	update := bson.M{"$set": res}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation with id %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", res.ID)
	}
	return nil
}

// Delete removes a reservation document by its ID.
func (r *MongoReservationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}

// GetByIDWithProjection retrieves a reservation by its unique ID using a
// projection. Pass nil for projection to retrieve the full document.
func (r *MongoReservationRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &res, nil
}

// GetByID retrieves a reservation by its unique ID (full document).
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	return r.GetByIDWithProjection(id, nil)
}
