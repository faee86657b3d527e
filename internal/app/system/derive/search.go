package derive

import (
	"strings"

	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// MatchesSearch is a case-insensitive substring match of term against the order's
// display ID, title and location. Any field matching is enough. A blank term matches.
func MatchesSearch(o models.WorkOrder, term string) bool {
	return containsAny(term, o.DisplayID, o.Title, o.Location)
}

// CustomerMatchesSearch matches term against site name and contact name.
func CustomerMatchesSearch(c models.Customer, term string) bool {
	return containsAny(term, c.SiteName, c.ContactName)
}

func containsAny(term string, fields ...string) bool {
	q := text.Fold(strings.TrimSpace(term))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(text.Fold(f), q) {
			return true
		}
	}
	return false
}

// FilterWorkOrders returns the orders in g that match term, preserving order.
func FilterWorkOrders(orders []models.WorkOrder, g Group, term string) []models.WorkOrder {
	out := make([]models.WorkOrder, 0, len(orders))
	for _, o := range orders {
		if MatchesGroup(o, g.Statuses) && MatchesSearch(o, term) {
			out = append(out, o)
		}
	}
	return out
}

// FilterCustomers returns the customers matching term, preserving order.
func FilterCustomers(customers []models.Customer, term string) []models.Customer {
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if CustomerMatchesSearch(c, term) {
			out = append(out, c)
		}
	}
	return out
}

// OrdersForCustomer returns the orders linked to customerID, preserving order.
func OrdersForCustomer(orders []models.WorkOrder, customerID string) []models.WorkOrder {
	out := make([]models.WorkOrder, 0)
	if customerID == "" {
		return out
	}
	for _, o := range orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}
