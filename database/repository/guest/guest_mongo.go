package guestRepo

import (
	"context"
	"fmt"
	"time"

	"evervow/database"
	"evervow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo creates a new instance of GuestRepository using MongoDB.
func NewMongoGuestRepo() GuestRepository {
	coll := database.MongoClient.Database("evervow").Collection("guests")
	repo := &MongoGuestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoGuestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "weddingId", Value: 1}}},
		{Keys: bson.D{{Key: "weddingId", Value: 1}, {Key: "rsvpStatus", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a guest by its unique ID.
func (r *MongoGuestRepo) GetByID(id string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest); err != nil {
		return nil, fmt.Errorf("failed to fetch guest with id %s: %w", id, err)
	}
	return &guest, nil
}

// ListByWedding retrieves the full roster snapshot for one wedding.
func (r *MongoGuestRepo) ListByWedding(weddingID string) ([]models.Guest, error) {
	return r.list(bson.M{"weddingId": weddingID})
}

// ListByStatus retrieves a wedding's guests filtered by RSVP status.
func (r *MongoGuestRepo) ListByStatus(weddingID string, status models.RSVPStatus) ([]models.Guest, error) {
	return r.list(bson.M{"weddingId": weddingID, "rsvpStatus": status})
}

func (r *MongoGuestRepo) list(filter bson.M) ([]models.Guest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	defer cursor.Close(ctx)

	var guests []models.Guest
	for cursor.Next(ctx) {
		var g models.Guest
		if err := cursor.Decode(&g); err != nil {
			return nil, fmt.Errorf("failed to decode guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, nil
}

// Create inserts a new guest document.
func (r *MongoGuestRepo) Create(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	guest.CreatedAt = now
	guest.UpdatedAt = now
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}

	_, err := r.coll.InsertOne(ctx, guest)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// Update modifies an existing guest document.
func (r *MongoGuestRepo) Update(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	guest.UpdatedAt = time.Now()
	filter := bson.M{"id": guest.ID}
	update := bson.M{"$set": guest}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update guest with id %s: %w", guest.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", guest.ID)
	}
	return nil
}

// Delete removes a guest document by its ID.
func (r *MongoGuestRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete guest with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("guest with id %s not found", id)
	}
	return nil
}

// UpdateRSVP records a completed RSVP outcome for a guest.
func (r *MongoGuestRepo) UpdateRSVP(id string, record models.RSVPRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"rsvpStatus":      record.Status,
		"plusOneComing":   record.PlusOneComing,
		"companionComing": record.CompanionComes,
		"rsvpAt":          now,
		"updatedAt":       now,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to record RSVP for guest %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", id)
	}
	return nil
}
