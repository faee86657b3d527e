package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
)

func TestNewBaseVM_SignedIn(t *testing.T) {
	u := seed.CurrentUser()
	r := auth.WithTestUser(httptest.NewRequest("GET", "/customers", nil), u)
	vm := viewdata.NewBaseVM(r, "Customers", "/")

	if !vm.IsLoggedIn || vm.UserName != u.Name || vm.UserInitials != u.Initials {
		t.Errorf("user fields = %+v", vm)
	}
	if vm.Title != "Customers" || vm.SiteName != viewdata.SiteName {
		t.Errorf("page fields = %+v", vm)
	}
}

func TestNewBaseVM_Anonymous(t *testing.T) {
	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/login", nil), "Sign in", "/")
	if vm.IsLoggedIn || vm.UserName != "" {
		t.Errorf("anonymous request produced user fields: %+v", vm)
	}
}

func TestSetError(t *testing.T) {
	var vm viewdata.BaseVM
	vm.SetError("Site name is required.")
	if vm.Error != "Site name is required." {
		t.Errorf("Error = %q", vm.Error)
	}
}

func TestWorkOrderRows(t *testing.T) {
	orders := seed.WorkOrders()
	rows := viewdata.WorkOrderRows(orders)
	if len(rows) != len(orders) {
		t.Fatalf("got %d rows, want %d", len(rows), len(orders))
	}
	for i, row := range rows {
		if row.ID != orders[i].ID {
			t.Errorf("row %d id = %q, want %q", i, row.ID, orders[i].ID)
		}
		if row.Badge == "" || row.Accent == "" {
			t.Errorf("row %d missing style classes", i)
		}
	}
}

func TestCountUnread(t *testing.T) {
	var vm viewdata.BaseVM
	ns := seed.Notifications()
	vm.CountUnread(ns)

	want := 0
	for _, n := range ns {
		if n.IsUnread {
			want++
		}
	}
	if vm.UnreadCount != want {
		t.Errorf("UnreadCount = %d, want %d", vm.UnreadCount, want)
	}
}
