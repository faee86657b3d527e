package derive

import (
	"strings"

	"github.com/dalemusser/fieldhub/internal/domain/models"
)

// ReadFilter selects notifications by read state.
type ReadFilter string

const (
	FilterAll    ReadFilter = "all"
	FilterRead   ReadFilter = "read"
	FilterUnread ReadFilter = "unread"
)

// ParseReadFilter maps a query value to a filter; unknown values mean all.
func ParseReadFilter(v string) ReadFilter {
	switch ReadFilter(strings.ToLower(strings.TrimSpace(v))) {
	case FilterRead:
		return FilterRead
	case FilterUnread:
		return FilterUnread
	}
	return FilterAll
}

// UnreadCount returns the number of unread notifications.
func UnreadCount(ns []models.Notification) int {
	n := 0
	for _, x := range ns {
		if x.IsUnread {
			n++
		}
	}
	return n
}

// FilterNotifications applies f, preserving order.
func FilterNotifications(ns []models.Notification, f ReadFilter) []models.Notification {
	out := make([]models.Notification, 0, len(ns))
	for _, x := range ns {
		switch f {
		case FilterRead:
			if x.IsUnread {
				continue
			}
		case FilterUnread:
			if !x.IsUnread {
				continue
			}
		}
		out = append(out, x)
	}
	return out
}
