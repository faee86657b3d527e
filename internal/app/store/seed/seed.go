// Package seed holds the fixture records a dashboard session starts from.
//
// Every accessor returns freshly allocated values, so a caller that edits its copy
// never affects another caller. There is no package-level mutable state.
package seed

import (
	"time"

	"github.com/dalemusser/fieldhub/internal/domain/models"
)

// Snapshot bundles the four fixture collections.
type Snapshot struct {
	Users         []models.User
	Customers     []models.Customer
	WorkOrders    []models.WorkOrder
	Notifications []models.Notification
}

// Load returns a fresh snapshot of all fixtures.
func Load() Snapshot {
	return Snapshot{
		Users:         Users(),
		Customers:     Customers(),
		WorkOrders:    WorkOrders(),
		Notifications: Notifications(),
	}
}

// CurrentUser is the technician signed in by default.
func CurrentUser() models.User {
	return models.User{
		ID:           "u1",
		Name:         "Roberto Carlos",
		Email:        "robertocarlos@email.com",
		Initials:     "RC",
		AvatarColor:  "bg-blue-600",
		Organization: "Gold Gym",
	}
}

// OtherUser is a second technician used as the assignee of most fixture orders.
func OtherUser() models.User {
	return models.User{
		ID:          "u2",
		Name:        "Alex Kim",
		Email:       "alex@example.com",
		Initials:    "AK",
		AvatarColor: "bg-indigo-600",
	}
}

// RitaUser is a third technician.
func RitaUser() models.User {
	return models.User{
		ID:          "u3",
		Name:        "Rita Miller",
		Email:       "rita@example.com",
		Initials:    "RM",
		AvatarColor: "bg-red-600",
	}
}

// Users returns all fixture users, current user first.
func Users() []models.User {
	return []models.User{CurrentUser(), OtherUser(), RitaUser()}
}

// Customers returns the fixture customers.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID:           "c1",
			SiteName:     "Gold Gym",
			Address:      "123 Fitness Ave, Sector 15",
			Postcode:     "121007",
			ContactName:  "John Doe",
			ContactPhone: "+91 98765 43210",
		},
		{
			ID:           "c2",
			SiteName:     "Silver Gym",
			Address:      "456 Muscle Lane, Green Park",
			Postcode:     "110016",
			ContactName:  "Jane Smith",
			ContactPhone: "+91 98989 89898",
		},
	}
}

// WorkOrders returns the fixture work orders in display order.
// Note that wo1 and wo2 share a display ID; display IDs are not unique.
func WorkOrders() []models.WorkOrder {
	other, rita, current := OtherUser(), RitaUser(), CurrentUser()
	return []models.WorkOrder{
		{
			ID:           "wo1",
			DisplayID:    "#WO-0065",
			Title:        "FlexiStrength 9000",
			Location:     "Gold gym, Faridabad",
			Description:  "Emergency repair required for main production line...",
			Date:         "Jan 19, 2025",
			Status:       models.StatusAssigned,
			AssignedUser: other,
			CustomerID:   "c1",
			CreatedAt:    day(2025, time.January, 19),
		},
		{
			ID:           "wo2",
			DisplayID:    "#WO-0065",
			Title:        "FlexiStrength 9000",
			Location:     "Gold gym, Faridabad",
			Description:  "Emergency repair required for main production line belt system to ensure safety compliance.",
			Date:         "Jan 19, 2025",
			Status:       models.StatusInProgress,
			AssignedUser: other,
			CustomerID:   "c1",
			CreatedAt:    day(2025, time.January, 19),
		},
		{
			ID:           "wo3",
			DisplayID:    "#WO-0067",
			Title:        "TreadMill X1",
			Location:     "Silver gym, Delhi",
			Description:  "Routine maintenance check for motor noise.",
			Date:         "Jan 20, 2025",
			Status:       models.StatusInProgress,
			AssignedUser: other,
			CustomerID:   "c2",
			CreatedAt:    day(2025, time.January, 20),
		},
		{
			ID:           "wo4",
			DisplayID:    "#WO-0060",
			Title:        "PowerMax 3000",
			Location:     "Fit Zone, Mumbai",
			Description:  "Awaiting parts for the upgrade of the electrical console unit.",
			Date:         "Jan 15, 2025",
			Status:       models.StatusCancelled,
			AssignedUser: rita,
			CreatedAt:    day(2025, time.January, 15),
		},
		{
			ID:           "wo5",
			DisplayID:    "#WO-0055",
			Title:        "FlexiStrength 9000",
			Location:     "Gold gym, Faridabad",
			Description:  "Emergency repair required for main production line.",
			Date:         "Jan 10, 2025",
			Status:       models.StatusCompleted,
			AssignedUser: other,
			CustomerID:   "c1",
			CreatedAt:    day(2025, time.January, 10),
		},
		{
			ID:           "wo6",
			DisplayID:    "#WO-0050",
			Title:        "Elliptical E5",
			Location:     "Home Gym, Pune",
			Description:  "Console display not working.",
			Date:         "Jan 05, 2025",
			Status:       models.StatusCompleted,
			AssignedUser: rita,
			CreatedAt:    day(2025, time.January, 5),
		},
		{
			ID:           "wo7",
			DisplayID:    "#WO-0070",
			Title:        "RowMaster 500",
			Location:     "City Center Gym",
			Description:  "Chain needs lubrication and tension adjustment.",
			Date:         "Jan 22, 2025",
			Status:       models.StatusTodo,
			AssignedUser: current,
			CustomerID:   "c2",
			CreatedAt:    day(2025, time.January, 22),
		},
	}
}

// Notifications returns the fixture activity feed, newest first.
func Notifications() []models.Notification {
	statusChange := func(id string, unread bool, from, to models.Status) models.Notification {
		return models.Notification{
			ID:            id,
			ActorName:     "Lamine Yamal",
			ActorInitials: "ES",
			ActorColor:    "bg-gray-500",
			ActionText:    "has changed the status",
			TargetID:      "WO-0071",
			Time:          "11:00 AM",
			IsUnread:      unread,
			Type:          models.NotificationStatusChange,
			FromStatus:    from,
			ToStatus:      to,
		}
	}
	return []models.Notification{
		statusChange("n1", true, models.StatusInProgress, models.StatusCompleted),
		statusChange("n2", true, models.StatusOnHold, models.StatusInProgress),
		statusChange("n3", false, models.StatusInProgress, models.StatusOnHold),
		statusChange("n4", false, models.StatusAssigned, models.StatusInProgress),
		{
			ID:            "n5",
			ActorName:     "Lamine Yamal",
			ActorInitials: "ES",
			ActorColor:    "bg-gray-500",
			ActionText:    "has added",
			HighlightText: "4hrs estimated time",
			TargetID:      "WO-0071",
			Time:          "11:00 AM",
			Type:          models.NotificationInfo,
		},
		statusChange("n6", false, models.StatusTodo, models.StatusAssigned),
		{
			ID:            "n7",
			ActorName:     "Admin",
			ActorInitials: "ES",
			ActorColor:    "bg-gray-500",
			ActionText:    "has cancelled the",
			TargetID:      "WO-0069",
			Time:          "11:00 AM",
			Type:          models.NotificationCancel,
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}
