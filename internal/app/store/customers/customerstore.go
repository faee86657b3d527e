// internal/app/store/customers/customerstore.go
package customerstore

import (
	"context"
	"errors"

	"github.com/dalemusser/fieldhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by GetByID for an unknown id.
var ErrNotFound = errors.New("customer not found")

// Store provides access to the customers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new customer store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("customers")}
}

// Create inserts c.
func (s *Store) Create(ctx context.Context, c models.Customer) error {
	_, err := s.c.InsertOne(ctx, c)
	return err
}

// Upsert replaces the document with c.ID, inserting it when absent.
func (s *Store) Upsert(ctx context.Context, c models.Customer) error {
	_, err := s.c.ReplaceOne(ctx, bson.M{"id": c.ID}, c, options.Replace().SetUpsert(true))
	return err
}

// GetByID returns the customer with id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (models.Customer, error) {
	var c models.Customer
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return models.Customer{}, ErrNotFound
	}
	if err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// Find returns every customer in insertion order.
func (s *Store) Find(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored customers.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// InsertMany bulk-inserts customers. Used to seed an empty collection.
func (s *Store) InsertMany(ctx context.Context, cs []models.Customer) error {
	if len(cs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(cs))
	for _, c := range cs {
		docs = append(docs, c)
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}
