// Package derive computes dashboard and list view models from the live collections.
//
// Everything here is a pure function of its arguments. Nothing is cached: the
// collections are small and callers recompute on every request.
package derive

import (
	"github.com/dalemusser/fieldhub/internal/app/system/statusstyle"
	"github.com/dalemusser/fieldhub/internal/domain/models"
)

// StatusCount is one dashboard tile.
type StatusCount struct {
	Status models.Status
	Count  int
	Style  statusstyle.Style
}

// CountByStatus returns the number of orders whose status equals s.
func CountByStatus(orders []models.WorkOrder, s models.Status) int {
	n := 0
	for _, o := range orders {
		if o.Status == s {
			n++
		}
	}
	return n
}

// StatusCounts returns one tile per status in display order.
func StatusCounts(orders []models.WorkOrder) []StatusCount {
	statuses := models.AllStatuses()
	out := make([]StatusCount, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusCount{
			Status: s,
			Count:  CountByStatus(orders, s),
			Style:  statusstyle.For(s),
		})
	}
	return out
}
