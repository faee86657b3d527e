package loginstore_test

import (
	"net/http/httptest"
	"testing"
	"time"

	loginstore "github.com/dalemusser/fieldhub/internal/app/store/logins"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/fieldhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := loginstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := models.LoginRecord{UserID: "u1", IP: "192.168.1.1", Provider: "trust"}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var found models.LoginRecord
	if err := db.Collection("login_records").FindOne(ctx, bson.M{"user_id": "u1"}).Decode(&found); err != nil {
		t.Fatalf("failed to find login record: %v", err)
	}
	if found.IP != "192.168.1.1" || found.Provider != "trust" {
		t.Errorf("got %+v", found)
	}
	if found.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_RecordSignIn_ClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.2:5555", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.2:5555", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.7:4321", "192.0.2.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			store := loginstore.New(db)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			r := httptest.NewRequest("POST", "/login", nil)
			r.RemoteAddr = tt.remote
			r.Header.Set("User-Agent", "fieldhub-test")
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if err := store.RecordSignIn(ctx, r, "u2", "trust"); err != nil {
				t.Fatalf("RecordSignIn failed: %v", err)
			}
			recs, err := store.Recent(ctx, "u2", 1)
			if err != nil || len(recs) != 1 {
				t.Fatalf("Recent = %v, %v", recs, err)
			}
			if recs[0].IP != tt.want {
				t.Errorf("IP = %q, want %q", recs[0].IP, tt.want)
			}
			if recs[0].UserAgent != "fieldhub-test" {
				t.Errorf("UserAgent = %q, want fieldhub-test", recs[0].UserAgent)
			}
		})
	}
}

func TestStore_Recent_NewestFirstWithLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := loginstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := models.LoginRecord{UserID: "u3", CreatedAt: base.Add(time.Duration(i) * time.Hour), Provider: "trust"}
		if err := store.Create(ctx, rec); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}
	recs, err := store.Recent(ctx, "u3", 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if !recs[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("first = %v, want newest", recs[0].CreatedAt)
	}
}
