package customers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dalemusser/fieldhub/internal/app/features/customers"
	uierrors "github.com/dalemusser/fieldhub/internal/app/features/errors"
	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/fieldhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*customers.Handler, *fieldstore.Store) {
	t.Helper()
	logger := zap.NewNop()
	store := testutil.NewStore(t)
	return customers.NewHandler(store, uierrors.NewErrorLogger(logger), logger), store
}

func serve(fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		fn(rec, req)
	}()
	return rec
}

func validForm() url.Values {
	return url.Values{
		"siteName":     {"Gold Gym"},
		"address":      {"123 Fitness Ave"},
		"postcode":     {"3000"},
		"contactName":  {"Jo Bloggs"},
		"contactPhone": {"555-0100"},
	}
}

func TestHandleCreate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(url.Values)
		wantStatus int
		wantAdded  bool
	}{
		{"valid", func(url.Values) {}, http.StatusSeeOther, true},
		{"blank site name", func(f url.Values) { f.Set("siteName", "  ") }, http.StatusUnprocessableEntity, false},
		{"blank address", func(f url.Values) { f.Set("address", "") }, http.StatusUnprocessableEntity, false},
		{"blank contact", func(f url.Values) { f.Del("contactName") }, http.StatusUnprocessableEntity, false},
		{"optional fields empty", func(f url.Values) { f.Del("postcode"); f.Del("contactPhone") }, http.StatusSeeOther, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestHandler(t)
			before := len(store.Customers())
			form := validForm()
			tt.mutate(form)

			rec := serve(h.HandleCreate, testutil.NewFormRequest("/customers", form))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			added := len(store.Customers()) == before+1
			if added != tt.wantAdded {
				t.Errorf("added = %v, want %v", added, tt.wantAdded)
			}
		})
	}
}

func TestHandleEdit_UpdatesKeepsID(t *testing.T) {
	h, store := newTestHandler(t)
	c := store.Customers()[0]

	form := validForm()
	form.Set("return", "/customers/"+c.ID+"/history")
	req := testutil.WithChiURLParam(testutil.NewFormRequest("/customers/"+c.ID+"/edit", form), "id", c.ID)
	rec := serve(h.HandleEdit, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/customers/"+c.ID+"/history" {
		t.Errorf("Location = %q", loc)
	}
	got, ok := store.CustomerByID(c.ID)
	if !ok || got.SiteName != "Gold Gym" || got.ContactPhone != "555-0100" {
		t.Errorf("updated = %+v", got)
	}
	if len(store.Customers()) != len(testutil.NewStore(t).Customers()) {
		t.Error("edit must not change the number of customers")
	}
}

func TestHandleEdit_UnknownID(t *testing.T) {
	h, store := newTestHandler(t)
	before := store.Customers()

	req := testutil.WithChiURLParam(testutil.NewFormRequest("/customers/ghost/edit", validForm()), "id", "ghost")
	rec := serve(h.HandleEdit, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	after := store.Customers()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("customer %d changed", i)
		}
	}
}

func TestServeEdit_UnknownID(t *testing.T) {
	h, _ := newTestHandler(t)
	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/customers/ghost/edit", nil), "id", "ghost")
	if rec := serve(h.ServeEdit, req); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleCreateWorkOrder_VisibleEverywhere(t *testing.T) {
	h, store := newTestHandler(t)
	c := store.Customers()[0]

	form := url.Values{"machineName": {"Treadmill 3"}, "issueTitle": {"Belt noise"}}
	req := testutil.WithChiURLParam(testutil.NewFormRequest("/customers/"+c.ID+"/work-orders", form), "id", c.ID)
	req = testutil.WithUser(req, testutil.TechnicianUser())
	rec := serve(h.HandleCreateWorkOrder, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	wo := store.WorkOrders()[0]
	if wo.CustomerID != c.ID || wo.Status != models.StatusTodo {
		t.Errorf("created %+v", wo)
	}
	if got := derive.OrdersForCustomer(store.WorkOrders(), c.ID); len(got) == 0 || got[0].ID != wo.ID {
		t.Error("new order missing from customer history")
	}
	newTab, _ := derive.GroupByKey(derive.GroupNew)
	if got := derive.FilterWorkOrders(store.WorkOrders(), newTab, ""); len(got) == 0 || got[0].ID != wo.ID {
		t.Error("new order missing from the New tab")
	}
}

func TestHandleCreateWorkOrder_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		title      string
		wantStatus int
	}{
		{"unknown customer", "ghost", "Belt noise", http.StatusNotFound},
		{"missing title", "", "", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestHandler(t)
			before := len(store.WorkOrders())
			id := tt.id
			if id == "" {
				id = store.Customers()[0].ID
			}
			form := url.Values{"issueTitle": {tt.title}}
			req := testutil.WithChiURLParam(testutil.NewFormRequest("/customers/"+id+"/work-orders", form), "id", id)
			req = testutil.WithUser(req, testutil.TechnicianUser())
			rec := serve(h.HandleCreateWorkOrder, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if len(store.WorkOrders()) != before {
				t.Error("no order should be created")
			}
		})
	}
}
