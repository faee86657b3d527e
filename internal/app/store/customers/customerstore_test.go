package customerstore_test

import (
	"errors"
	"testing"

	customerstore "github.com/dalemusser/fieldhub/internal/app/store/customers"
	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	"github.com/dalemusser/fieldhub/internal/testutil"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := customerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := seed.Customers()[0]
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != c {
		t.Errorf("got %+v, want %+v", got, c)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := customerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, "nope"); !errors.Is(err, customerstore.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_UpsertReplaces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := customerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := seed.Customers()[1]
	if err := store.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	c.ContactPhone = "0400 000 000"
	if err := store.Upsert(ctx, c); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count = %d, %v; want 1", n, err)
	}
	got, _ := store.GetByID(ctx, c.ID)
	if got.ContactPhone != "0400 000 000" {
		t.Errorf("ContactPhone = %q", got.ContactPhone)
	}
}

func TestStore_FindKeepsInsertionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := customerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	want := seed.Customers()
	if err := store.InsertMany(ctx, want); err != nil {
		t.Fatalf("InsertMany failed: %v", err)
	}
	got, err := store.Find(ctx)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
}
