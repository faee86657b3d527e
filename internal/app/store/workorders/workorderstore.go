// internal/app/store/workorders/workorderstore.go
package workorderstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fieldhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by GetByID for an unknown id.
var ErrNotFound = errors.New("work order not found")

// Store provides access to the work_orders collection. Documents are keyed by the
// application id field, not by _id.
type Store struct {
	c *mongo.Collection
}

// New creates a new work-order store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("work_orders")}
}

// Create inserts wo. If CreatedAt is zero, it's set to time.Now().UTC().
// A duplicate id surfaces as a mongo duplicate-key error.
func (s *Store) Create(ctx context.Context, wo models.WorkOrder) error {
	if wo.CreatedAt.IsZero() {
		wo.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, wo)
	return err
}

// Upsert replaces the document with wo.ID, inserting it when absent.
func (s *Store) Upsert(ctx context.Context, wo models.WorkOrder) error {
	if wo.CreatedAt.IsZero() {
		wo.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.ReplaceOne(ctx, bson.M{"id": wo.ID}, wo, options.Replace().SetUpsert(true))
	return err
}

// GetByID returns the work order with id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (models.WorkOrder, error) {
	var wo models.WorkOrder
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&wo)
	if err == mongo.ErrNoDocuments {
		return models.WorkOrder{}, ErrNotFound
	}
	if err != nil {
		return models.WorkOrder{}, err
	}
	return wo, nil
}

// Find returns every work order, newest first.
func (s *Store) Find(ctx context.Context) ([]models.WorkOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.WorkOrder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByCustomer returns the orders linked to customerID, newest first.
func (s *Store) FindByCustomer(ctx context.Context, customerID string) ([]models.WorkOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.WorkOrder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored work orders.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// InsertMany bulk-inserts orders. Used to seed an empty collection.
func (s *Store) InsertMany(ctx context.Context, orders []models.WorkOrder) error {
	if len(orders) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(orders))
	for _, wo := range orders {
		docs = append(docs, wo)
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}
