// Package records turns form input into new or updated domain records.
//
// Every mutation takes the current collection and returns a newly allocated one;
// the input slice is never modified. Identifier policy is injected through
// idgen.Generator so callers and tests control it.
package records

import (
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/fieldhub/internal/app/system/idgen"
	"github.com/dalemusser/fieldhub/internal/domain/models"
)

const (
	// DefaultMachineName is used as the title when no machine name is given.
	DefaultMachineName = "New Machine"
	// UnknownLocation is used when no location can be composed.
	UnknownLocation = "Unknown Location"
	// DateLayout formats WorkOrder.Date, e.g. "Jan 19, 2025".
	DateLayout = "Jan 2, 2006"

	workOrderPrefix = "wo"
	customerPrefix  = "c"
)

// WorkOrderInput is the new-work-order form.
type WorkOrderInput struct {
	CustomerID       string
	MachineName      string
	SerialNumber     string
	MachineLocation  string
	IssueTitle       string
	IssueDescription string
	Instructions     string
}

// ParseWorkOrderForm reads and cleans the form values. It returns the cleaned
// input along with a *ValidationError when the issue title is missing, so the
// caller can echo the values back.
func ParseWorkOrderForm(form url.Values) (WorkOrderInput, error) {
	in := WorkOrderInput{
		CustomerID:       strings.TrimSpace(form.Get("customerId")),
		MachineName:      htmlsanitize.StripTags(form.Get("machineName")),
		SerialNumber:     htmlsanitize.StripTags(form.Get("serialNumber")),
		MachineLocation:  htmlsanitize.StripTags(form.Get("machineLocation")),
		IssueTitle:       htmlsanitize.StripTags(form.Get("issueTitle")),
		IssueDescription: htmlsanitize.StripTags(form.Get("issueDescription")),
		Instructions:     htmlsanitize.StripTags(form.Get("instructions")),
	}
	if in.IssueTitle == "" {
		return in, required("issueTitle", "Issue title")
	}
	return in, nil
}

// CreateWorkOrder builds a new Todo work order assigned to actor and returns a new
// collection with it at the head. A CustomerID that does not resolve is dropped.
func CreateWorkOrder(orders []models.WorkOrder, customers []models.Customer, in WorkOrderInput,
	actor models.User, gen idgen.Generator, now time.Time) ([]models.WorkOrder, models.WorkOrder, error) {

	var cust *models.Customer
	if in.CustomerID != "" {
		if c, ok := FindCustomer(customers, in.CustomerID); ok {
			cust = &c
		}
	}
	wo := build(in, cust, actor, gen, now)
	return prepend(orders, wo), wo, nil
}

// CreateWorkOrderForCustomer creates an order linked to customerID. An unknown
// customer returns ErrCustomerNotFound and the original collection.
func CreateWorkOrderForCustomer(orders []models.WorkOrder, customers []models.Customer, customerID string,
	in WorkOrderInput, actor models.User, gen idgen.Generator, now time.Time) ([]models.WorkOrder, models.WorkOrder, error) {

	c, ok := FindCustomer(customers, customerID)
	if !ok {
		return orders, models.WorkOrder{}, ErrCustomerNotFound
	}
	wo := build(in, &c, actor, gen, now)
	return prepend(orders, wo), wo, nil
}

func build(in WorkOrderInput, cust *models.Customer, actor models.User, gen idgen.Generator, now time.Time) models.WorkOrder {
	title := strings.TrimSpace(in.MachineName)
	if title == "" {
		title = DefaultMachineName
	}
	wo := models.WorkOrder{
		ID:           gen.NewID(workOrderPrefix),
		DisplayID:    gen.NextDisplayID(),
		Title:        title,
		Location:     ComposeLocation(strings.TrimSpace(in.MachineLocation), cust),
		Description:  ComposeDescription(strings.TrimSpace(in.IssueTitle), strings.TrimSpace(in.IssueDescription)),
		Date:         now.Format(DateLayout),
		Status:       models.StatusTodo,
		AssignedUser: actor,
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		IssueTitle:   strings.TrimSpace(in.IssueTitle),
		Instructions: strings.TrimSpace(in.Instructions),
		CreatedAt:    now,
	}
	if cust != nil {
		wo.CustomerID = cust.ID
	}
	return wo
}

// ComposeLocation joins the machine location with the customer's site and address.
// Without a customer it falls back to the machine location, then UnknownLocation.
func ComposeLocation(machineLocation string, cust *models.Customer) string {
	if cust != nil {
		site := cust.SiteName + ", " + cust.Address
		if machineLocation == "" {
			return site
		}
		return machineLocation + ", " + site
	}
	if machineLocation != "" {
		return machineLocation
	}
	return UnknownLocation
}

// ComposeDescription prefixes the description with "<issueTitle>: " when a title is present.
func ComposeDescription(issueTitle, issueDescription string) string {
	if issueTitle == "" {
		return issueDescription
	}
	return issueTitle + ": " + issueDescription
}

// FindWorkOrder resolves id against orders.
func FindWorkOrder(orders []models.WorkOrder, id string) (models.WorkOrder, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.WorkOrder{}, false
}

func prepend(orders []models.WorkOrder, wo models.WorkOrder) []models.WorkOrder {
	out := make([]models.WorkOrder, 0, len(orders)+1)
	out = append(out, wo)
	return append(out, orders...)
}
