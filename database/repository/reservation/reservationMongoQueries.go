package reservationRepo

import (
	"fmt"
	"time"

	"dormhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByTenant retrieves all reservations belonging to a tenant, newest first.
func (r *MongoReservationRepo) GetByTenant(tenantID string) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for tenant %s: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// GetAll retrieves reservations matching the given filter, newest first.
func (r *MongoReservationRepo) GetAll(filter models.ReservationFilter) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Branch != "" {
		query["room.branch"] = filter.Branch
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.TenantID != "" {
		query["tenant_id"] = filter.TenantID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// GetApprovedVisitsBetween retrieves reservations with an approved,
// not-yet-completed visit scheduled in the given unix-second window.
// Used by the visit reminder worker.
func (r *MongoReservationRepo) GetApprovedVisitsBetween(from, to int64) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"schedule_approved": true,
		"visit_approved":    false,
		"status":            models.ReservationPending,
		"visit_date": bson.M{
			"$gte": time.Unix(from, 0),
			"$lt":  time.Unix(to, 0),
		},
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve upcoming visits: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}
