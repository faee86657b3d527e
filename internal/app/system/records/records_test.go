package records_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	"github.com/dalemusser/fieldhub/internal/app/system/idgen"
	"github.com/dalemusser/fieldhub/internal/app/system/records"
	"github.com/dalemusser/fieldhub/internal/domain/models"
)

var testNow = time.Date(2025, time.January, 19, 10, 30, 0, 0, time.UTC)

func goldGym() models.Customer {
	return models.Customer{
		ID:          "c1",
		SiteName:    "Gold Gym",
		Address:     "123 Fitness Ave",
		ContactName: "John Doe",
	}
}

func TestCreateWorkOrder_LocationWithCustomer(t *testing.T) {
	customers := []models.Customer{goldGym()}
	in := records.WorkOrderInput{
		CustomerID:      "c1",
		MachineName:     "Pump A",
		MachineLocation: "2nd Floor",
		IssueTitle:      "Leak",
	}
	_, wo, err := records.CreateWorkOrder(nil, customers, in, seed.CurrentUser(), idgen.NewSequence(0), testNow)
	if err != nil {
		t.Fatalf("CreateWorkOrder: %v", err)
	}
	if wo.Location != "2nd Floor, Gold Gym, 123 Fitness Ave" {
		t.Errorf("location = %q", wo.Location)
	}
	if wo.CustomerID != "c1" {
		t.Errorf("customerID = %q, want c1", wo.CustomerID)
	}
	if wo.Title != "Pump A" {
		t.Errorf("title = %q", wo.Title)
	}
}

func TestComposeLocation(t *testing.T) {
	c := goldGym()
	tests := []struct {
		name     string
		location string
		cust     *models.Customer
		want     string
	}{
		{"customer and location", "2nd Floor", &c, "2nd Floor, Gold Gym, 123 Fitness Ave"},
		{"customer only", "", &c, "Gold Gym, 123 Fitness Ave"},
		{"location only", "Basement", nil, "Basement"},
		{"nothing", "", nil, "Unknown Location"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := records.ComposeLocation(tt.location, tt.cust); got != tt.want {
				t.Errorf("ComposeLocation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateWorkOrder_UnknownCustomerFallsBack(t *testing.T) {
	in := records.WorkOrderInput{CustomerID: "missing", MachineName: "Pump"}
	_, wo, err := records.CreateWorkOrder(nil, []models.Customer{goldGym()}, in, seed.CurrentUser(), idgen.NewSequence(0), testNow)
	if err != nil {
		t.Fatalf("CreateWorkOrder: %v", err)
	}
	if wo.Location != records.UnknownLocation {
		t.Errorf("location = %q, want %q", wo.Location, records.UnknownLocation)
	}
	if wo.CustomerID != "" {
		t.Errorf("unresolved customer id kept: %q", wo.CustomerID)
	}
}

func TestCreateWorkOrder_Defaults(t *testing.T) {
	actor := seed.CurrentUser()
	_, wo, _ := records.CreateWorkOrder(nil, nil, records.WorkOrderInput{IssueDescription: "Grinding noise"}, actor, idgen.NewSequence(0), testNow)

	if wo.Status != models.StatusTodo {
		t.Errorf("status = %q, want Todo", wo.Status)
	}
	if wo.Title != records.DefaultMachineName {
		t.Errorf("title = %q", wo.Title)
	}
	if wo.Description != "Grinding noise" {
		t.Errorf("description = %q", wo.Description)
	}
	if wo.Date != "Jan 19, 2025" {
		t.Errorf("date = %q", wo.Date)
	}
	if wo.AssignedUser.ID != actor.ID {
		t.Errorf("assigned to %q, want %q", wo.AssignedUser.ID, actor.ID)
	}
	if wo.ID != "wo-1" || wo.DisplayID != "#WO-1000" {
		t.Errorf("ids = %q %q", wo.ID, wo.DisplayID)
	}
}

func TestComposeDescription(t *testing.T) {
	if got := records.ComposeDescription("Leak", "Water on floor"); got != "Leak: Water on floor" {
		t.Errorf("got %q", got)
	}
	if got := records.ComposeDescription("", "Water on floor"); got != "Water on floor" {
		t.Errorf("got %q", got)
	}
}

func TestCreateWorkOrder_AlwaysTodo(t *testing.T) {
	gen := idgen.NewSequence(0)
	inputs := []records.WorkOrderInput{
		{},
		{MachineName: "Completed"},
		{IssueTitle: "Cancelled", CustomerID: "c1"},
	}
	for _, in := range inputs {
		_, wo, _ := records.CreateWorkOrder(nil, []models.Customer{goldGym()}, in, seed.CurrentUser(), gen, testNow)
		if wo.Status != models.StatusTodo {
			t.Errorf("input %+v produced status %q", in, wo.Status)
		}
	}
}

func TestCreateWorkOrder_PrependsWithoutMutating(t *testing.T) {
	gen := idgen.NewSequence(0)
	orig := seed.WorkOrders()
	firstID := orig[0].ID

	first, a, _ := records.CreateWorkOrder(orig, nil, records.WorkOrderInput{MachineName: "A"}, seed.CurrentUser(), gen, testNow)
	second, b, _ := records.CreateWorkOrder(first, nil, records.WorkOrderInput{MachineName: "B"}, seed.CurrentUser(), gen, testNow)

	if len(second) != len(orig)+2 {
		t.Fatalf("len = %d, want %d", len(second), len(orig)+2)
	}
	if second[0].ID != b.ID || second[1].ID != a.ID {
		t.Errorf("head = %s, %s; want %s, %s", second[0].ID, second[1].ID, b.ID, a.ID)
	}
	if orig[0].ID != firstID || len(orig) != len(seed.WorkOrders()) {
		t.Error("input collection was modified")
	}
	if a.ID == b.ID {
		t.Error("ids collide")
	}
}

func TestCreateWorkOrderForCustomer(t *testing.T) {
	customers := []models.Customer{goldGym()}
	orders := seed.WorkOrders()

	out, wo, err := records.CreateWorkOrderForCustomer(orders, customers, "c1",
		records.WorkOrderInput{MachineName: "Rower", IssueTitle: "Chain"}, seed.CurrentUser(), idgen.NewSequence(0), testNow)
	if err != nil {
		t.Fatalf("CreateWorkOrderForCustomer: %v", err)
	}
	if wo.CustomerID != "c1" || out[0].ID != wo.ID {
		t.Errorf("order not linked or not at head: %+v", wo)
	}
	if wo.Location != "Gold Gym, 123 Fitness Ave" {
		t.Errorf("location = %q", wo.Location)
	}

	out, _, err = records.CreateWorkOrderForCustomer(orders, customers, "nope",
		records.WorkOrderInput{}, seed.CurrentUser(), idgen.NewSequence(0), testNow)
	if !errors.Is(err, records.ErrCustomerNotFound) {
		t.Errorf("err = %v, want ErrCustomerNotFound", err)
	}
	if len(out) != len(orders) {
		t.Errorf("collection changed on error: %d vs %d", len(out), len(orders))
	}
}

func TestParseWorkOrderForm(t *testing.T) {
	form := url.Values{
		"machineName":      {"  Pump <b>A</b> "},
		"machineLocation":  {"2nd Floor"},
		"issueTitle":       {"Leak"},
		"issueDescription": {"<script>x()</script>Water"},
		"customerId":       {" c1 "},
	}
	in, err := records.ParseWorkOrderForm(form)
	if err != nil {
		t.Fatalf("ParseWorkOrderForm: %v", err)
	}
	if in.MachineName != "Pump A" || in.IssueDescription != "Water" || in.CustomerID != "c1" {
		t.Errorf("parsed = %+v", in)
	}

	in, err = records.ParseWorkOrderForm(url.Values{"machineName": {"Pump"}, "issueTitle": {"   "}})
	var ve *records.ValidationError
	if !errors.As(err, &ve) || ve.Field != "issueTitle" {
		t.Fatalf("err = %v, want issueTitle ValidationError", err)
	}
	if in.MachineName != "Pump" {
		t.Errorf("input not echoed back: %+v", in)
	}
}

func TestCustomerInputValidate(t *testing.T) {
	valid := records.CustomerInput{SiteName: "Gym", Address: "1 Road", ContactName: "Ann"}
	tests := []struct {
		name  string
		in    records.CustomerInput
		field string
	}{
		{"valid", valid, ""},
		{"optional fields empty", records.CustomerInput{SiteName: "Gym", Address: "1 Road", ContactName: "Ann", Postcode: ""}, ""},
		{"no site", records.CustomerInput{Address: "1 Road", ContactName: "Ann"}, "siteName"},
		{"blank site", records.CustomerInput{SiteName: "   ", Address: "1 Road", ContactName: "Ann"}, "siteName"},
		{"no address", records.CustomerInput{SiteName: "Gym", ContactName: "Ann"}, "address"},
		{"no contact", records.CustomerInput{SiteName: "Gym", Address: "1 Road", ContactName: "\t"}, "contactName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			var ve *records.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("err = %v, want field %q", err, tt.field)
			}
		})
	}
}

func TestCreateCustomer(t *testing.T) {
	gen := idgen.NewSequence(0)
	orig := seed.Customers()

	out, c, err := records.CreateCustomer(orig, records.CustomerInput{SiteName: "Bronze Gym", Address: "9 Iron St", ContactName: "Sam"}, gen)
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if len(out) != len(orig)+1 || out[len(out)-1].ID != c.ID {
		t.Errorf("new customer not appended")
	}
	if c.ID == "" || c.Postcode != "" || c.ContactPhone != "" {
		t.Errorf("customer = %+v", c)
	}
	if len(orig) != len(seed.Customers()) {
		t.Error("input collection was modified")
	}
}

func TestCreateCustomer_EmptySiteNameAddsNothing(t *testing.T) {
	orig := seed.Customers()
	out, _, err := records.CreateCustomer(orig, records.CustomerInput{Address: "x", ContactName: "y"}, idgen.NewSequence(0))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(out) != len(orig) {
		t.Errorf("collection size = %d, want %d", len(out), len(orig))
	}
}

func TestUpdateCustomer(t *testing.T) {
	orig := seed.Customers()
	target := orig[0]
	in := records.CustomerInput{SiteName: "Gold Gym North", Address: "1 New Rd", Postcode: "N1", ContactName: "Mia", ContactPhone: "555"}

	out, c, err := records.UpdateCustomer(orig, target.ID, in)
	if err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if c.ID != target.ID || out[0].ID != target.ID {
		t.Errorf("id changed: %q", c.ID)
	}
	if out[0].SiteName != "Gold Gym North" || out[0].Postcode != "N1" || out[0].ContactPhone != "555" {
		t.Errorf("fields not replaced: %+v", out[0])
	}
	if orig[0].SiteName != target.SiteName {
		t.Error("input collection was modified")
	}
	for i := 1; i < len(out); i++ {
		if out[i] != orig[i] {
			t.Errorf("unrelated customer %d changed", i)
		}
	}
}

func TestUpdateCustomer_UnknownID(t *testing.T) {
	orig := seed.Customers()
	out, _, err := records.UpdateCustomer(orig, "missing", records.CustomerInput{SiteName: "a", Address: "b", ContactName: "c"})
	if !errors.Is(err, records.ErrCustomerNotFound) {
		t.Errorf("err = %v, want ErrCustomerNotFound", err)
	}
	if len(out) != len(orig) {
		t.Errorf("collection changed")
	}
	for i := range out {
		if out[i] != orig[i] {
			t.Errorf("customer %d changed", i)
		}
	}
}

func TestFindWorkOrder(t *testing.T) {
	orders := seed.WorkOrders()
	if _, ok := records.FindWorkOrder(orders, orders[0].ID); !ok {
		t.Error("existing order not found")
	}
	if _, ok := records.FindWorkOrder(orders, "nope"); ok {
		t.Error("unknown id reported found")
	}
}
