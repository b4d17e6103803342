package weddingRepo

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

// MongoWeddingRepo implements WeddingRepository using MongoDB.
type MongoWeddingRepo struct {
	coll *mongo.Collection
}

// NewMongoWeddingRepo creates a new instance of WeddingRepository using MongoDB.
func NewMongoWeddingRepo() WeddingRepository {
	coll := database.MongoClient.Database("evervow").Collection("weddings")
	repo := &MongoWeddingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in lookups.
// Subdomains are globally unique; custom domains are unique when present.
func (r *MongoWeddingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "subdomain", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customDomain", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a wedding by its unique ID.
func (r *MongoWeddingRepo) GetByID(id string) (*models.Wedding, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var wedding models.Wedding
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&wedding); err != nil {
		return nil, fmt.Errorf("failed to fetch wedding with id %s: %w", id, err)
	}
	return &wedding, nil
}

// GetBySubdomain retrieves a wedding by its platform subdomain.
func (r *MongoWeddingRepo) GetBySubdomain(subdomain string) (*models.Wedding, error) {
	return r.findOne(bson.M{"subdomain": subdomain})
}

// GetByCustomDomain retrieves a wedding by its custom apex domain.
func (r *MongoWeddingRepo) GetByCustomDomain(domain string) (*models.Wedding, error) {
	return r.findOne(bson.M{"customDomain": domain})
}

func (r *MongoWeddingRepo) findOne(filter bson.M) (*models.Wedding, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var wedding models.Wedding
	if err := r.coll.FindOne(ctx, filter).Decode(&wedding); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch wedding: %w", err)
	}
	return &wedding, nil
}

// Create inserts a new wedding document.
func (r *MongoWeddingRepo) Create(wedding *models.Wedding) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	wedding.CreatedAt = now
	wedding.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, wedding)
	if err != nil {
		return fmt.Errorf("failed to create wedding: %w", err)
	}
	return nil
}

// Update modifies an existing wedding document.
func (r *MongoWeddingRepo) Update(wedding *models.Wedding) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	wedding.UpdatedAt = time.Now()
	filter := bson.M{"id": wedding.ID}
	update := bson.M{"$set": wedding}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update wedding with id %s: %w", wedding.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("wedding with id %s not found", wedding.ID)
	}
	return nil
}

// Delete removes a wedding document by its ID.
func (r *MongoWeddingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete wedding with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("wedding with id %s not found", id)
	}
	return nil
}
