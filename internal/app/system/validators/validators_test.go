package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	"github.com/dalemusser/fieldhub/internal/app/system/validators"
	"github.com/dalemusser/fieldhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
			t.Fatalf("EnsureAll run %d failed: %v", i+1, err)
		}
	}
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatal(err)
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"work_orders", "customers", "login_records"} {
		if !have[want] {
			t.Errorf("collection %q missing", want)
		}
	}
}

func TestWorkOrdersValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection("work_orders")
	if _, err := coll.InsertOne(ctx, seed.WorkOrders()[0]); err != nil {
		t.Errorf("seed order rejected: %v", err)
	}

	tests := []struct {
		name string
		doc  bson.M
	}{
		{"unknown status", bson.M{"id": "x1", "display_id": "#WO-1000", "title": "T", "status": "Done", "created_at": time.Now()}},
		{"missing title", bson.M{"id": "x2", "display_id": "#WO-1001", "status": "Todo", "created_at": time.Now()}},
		{"bad display id", bson.M{"id": "x3", "display_id": "WO1", "title": "T", "status": "Todo", "created_at": time.Now()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := coll.InsertOne(ctx, tt.doc); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCustomersValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection("customers")
	if _, err := coll.InsertOne(ctx, seed.Customers()[0]); err != nil {
		t.Errorf("seed customer rejected: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"id": "c9", "site_name": "  ", "address": "a", "contact_name": "b"}); err == nil {
		t.Error("blank site name accepted")
	}
}
