package derive

import (
	"slices"

	"github.com/dalemusser/fieldhub/internal/domain/models"
)

// Group keys used in the ?tab= query parameter.
const (
	GroupNew      = "new"
	GroupAssigned = "assigned"
	GroupOngoing  = "ongoing"
	GroupHistory  = "history"
)

// Group is one work-order tab. The four groups partition the six statuses.
type Group struct {
	Key      string
	Label    string
	Statuses []models.Status
}

// Groups returns the tabs in display order.
func Groups() []Group {
	return []Group{
		{Key: GroupNew, Label: "New", Statuses: []models.Status{models.StatusTodo}},
		{Key: GroupAssigned, Label: "Assigned", Statuses: []models.Status{models.StatusAssigned}},
		{Key: GroupOngoing, Label: "In Progress", Statuses: []models.Status{models.StatusInProgress, models.StatusOnHold}},
		{Key: GroupHistory, Label: "History", Statuses: []models.Status{models.StatusCompleted, models.StatusCancelled}},
	}
}

// GroupByKey looks up a tab by key.
func GroupByKey(key string) (Group, bool) {
	for _, g := range Groups() {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// GroupOf returns the tab a status belongs to.
func GroupOf(s models.Status) (Group, bool) {
	for _, g := range Groups() {
		if slices.Contains(g.Statuses, s) {
			return g, true
		}
	}
	return Group{}, false
}

// MatchesGroup reports whether the order's status is in statuses.
func MatchesGroup(o models.WorkOrder, statuses []models.Status) bool {
	return slices.Contains(statuses, o.Status)
}

// TabCount is a tab with the number of orders it currently holds.
type TabCount struct {
	Group
	Count  int
	Active bool
}

// TabCounts counts orders per tab and marks the active one.
func TabCounts(orders []models.WorkOrder, activeKey string) []TabCount {
	groups := Groups()
	out := make([]TabCount, 0, len(groups))
	for _, g := range groups {
		n := 0
		for _, o := range orders {
			if MatchesGroup(o, g.Statuses) {
				n++
			}
		}
		out = append(out, TabCount{Group: g, Count: n, Active: g.Key == activeKey})
	}
	return out
}
