package workorders_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/fieldhub/internal/app/features/errors"
	"github.com/dalemusser/fieldhub/internal/app/features/workorders"
	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/fieldhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*workorders.Handler, *fieldstore.Store) {
	t.Helper()
	logger := zap.NewNop()
	store := testutil.NewStore(t)
	return workorders.NewHandler(store, uierrors.NewErrorLogger(logger), logger), store
}

// serve runs fn, recovering from the template engine not being booted in tests.
func serve(fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		fn(rec, req)
	}()
	return rec
}

func TestHandleCreate_Success(t *testing.T) {
	h, store := newTestHandler(t)
	before := len(store.WorkOrders())
	customer := store.Customers()[0]

	form := url.Values{
		"customerId":      {customer.ID},
		"machineName":     {"Pump A"},
		"machineLocation": {"2nd Floor"},
		"issueTitle":      {"Pressure drop"},
	}
	req := testutil.WithUser(testutil.NewFormRequest("/work-orders", form), testutil.TechnicianUser())
	rec := serve(h.HandleCreate, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	orders := store.WorkOrders()
	if len(orders) != before+1 {
		t.Fatalf("orders = %d, want %d", len(orders), before+1)
	}
	wo := orders[0]
	if loc := rec.Header().Get("Location"); loc != "/work-orders/"+wo.ID {
		t.Errorf("Location = %q", loc)
	}
	if wo.Status != models.StatusTodo || wo.Title != "Pump A" || wo.CustomerID != customer.ID {
		t.Errorf("created %+v", wo)
	}
	if !strings.HasPrefix(wo.Location, "2nd Floor, "+customer.SiteName) {
		t.Errorf("Location = %q", wo.Location)
	}
	if wo.AssignedUser.ID != testutil.TechnicianUser().ID {
		t.Errorf("assigned to %q", wo.AssignedUser.ID)
	}
}

func TestHandleCreate_MissingTitleWritesNothing(t *testing.T) {
	h, store := newTestHandler(t)
	before := len(store.WorkOrders())

	form := url.Values{"machineName": {"Pump A"}, "issueTitle": {"  "}}
	req := testutil.WithUser(testutil.NewFormRequest("/work-orders", form), testutil.TechnicianUser())
	rec := serve(h.HandleCreate, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if len(store.WorkOrders()) != before {
		t.Error("validation failure must not create an order")
	}
}

func TestServeDetail_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/work-orders/missing", nil), "id", "missing")
	rec := serve(h.ServeDetail, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRoutes_RequireSignIn(t *testing.T) {
	h, _ := newTestHandler(t)
	sm := testutil.NewSessionManager(t)
	router := workorders.Routes(h, sm)

	for _, target := range []string{"/", "/new", "/wo1"} {
		req := httptest.NewRequest("GET", target, nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s: status = %d, want %d", target, rec.Code, http.StatusSeeOther)
		}
	}
}
