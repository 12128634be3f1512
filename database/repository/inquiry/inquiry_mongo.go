package inquiryRepo

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

// InquiryRepository defines persistence operations for contact inquiries.
type InquiryRepository interface {
	Create(inq *models.Inquiry) error
	Delete(id string) error
	GetByID(id string) (*models.Inquiry, error)
	GetAll(unresolvedOnly bool) ([]models.Inquiry, error)
	MarkResolved(id string) error
}

// MongoInquiryRepo implements InquiryRepository using MongoDB.
type MongoInquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo creates a new instance of InquiryRepository using MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	coll := database.MongoClient.Database(database.Name).Collection("inquiries")
	repo := &MongoInquiryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inquiry indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInquiryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "resolved", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new inquiry document.
func (r *MongoInquiryRepo) Create(inq *models.Inquiry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inq.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, inq)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// Delete removes an inquiry document by its ID.
func (r *MongoInquiryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inquiry with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inquiry with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an inquiry by its unique ID.
func (r *MongoInquiryRepo) GetByID(id string) (*models.Inquiry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inq models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inq); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch inquiry with id %s: %w", id, err)
	}
	return &inq, nil
}

// GetAll retrieves inquiries, newest first.
func (r *MongoInquiryRepo) GetAll(unresolvedOnly bool) ([]models.Inquiry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if unresolvedOnly {
		query["resolved"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	for cursor.Next(ctx) {
		var inq models.Inquiry
		if err := cursor.Decode(&inq); err != nil {
			return nil, fmt.Errorf("failed to decode inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, nil
}

// MarkResolved flags an inquiry as handled.
func (r *MongoInquiryRepo) MarkResolved(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"resolved": true, "resolved_at": now},
	})
	if err != nil {
		return fmt.Errorf("failed to resolve inquiry with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inquiry with id %s not found", id)
	}
	return nil
}
