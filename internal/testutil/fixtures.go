package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	"github.com/dalemusser/fieldhub/internal/app/system/idgen"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// FixedNow is the clock used by NewStore.
var FixedNow = time.Date(2025, time.January, 19, 9, 0, 0, 0, time.UTC)

// NewStore returns a session store seeded with the fixtures, a deterministic
// id generator and a fixed clock.
func NewStore(t *testing.T, opts ...fieldstore.Option) *fieldstore.Store {
	t.Helper()
	opts = append([]fieldstore.Option{fieldstore.WithClock(func() time.Time { return FixedNow })}, opts...)
	return fieldstore.New(seed.Load(), idgen.NewSequence(0), opts...)
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data in MongoDB.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCustomer inserts a customer with the given id and site name.
func (f *Fixtures) CreateCustomer(ctx context.Context, id, siteName string) models.Customer {
	f.t.Helper()
	c := models.Customer{
		ID:          id,
		SiteName:    siteName,
		Address:     "1 Test Street",
		ContactName: "Test Contact",
	}
	if _, err := f.db.Collection("customers").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test customer: %v", err)
	}
	return c
}

// CreateWorkOrder inserts a Todo work order linked to customerID (may be empty).
func (f *Fixtures) CreateWorkOrder(ctx context.Context, id, displayID, customerID string, createdAt time.Time) models.WorkOrder {
	f.t.Helper()
	wo := models.WorkOrder{
		ID:           id,
		DisplayID:    displayID,
		Title:        "Test Machine",
		Location:     "Unknown Location",
		Date:         createdAt.Format("Jan 2, 2006"),
		Status:       models.StatusTodo,
		AssignedUser: seed.CurrentUser(),
		CustomerID:   customerID,
		CreatedAt:    createdAt,
	}
	if _, err := f.db.Collection("work_orders").InsertOne(ctx, wo); err != nil {
		f.t.Fatalf("failed to create test work order: %v", err)
	}
	return wo
}
