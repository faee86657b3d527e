// Package statusstyle maps work order statuses to presentation classes.
//
// Three contexts each have their own table: the accent border on cards and dashboard
// tiles, the outlined badge in list rows, and the solid pill used in notifications.
// The tables are keyed by the closed models.Status type; Neutral covers values that
// arrive from outside that set (for example a document decoded from Mongo).
package statusstyle

import "github.com/dalemusser/fieldhub/internal/domain/models"

// Style holds the CSS classes for one status.
type Style struct {
	Accent string
	Badge  string
	Pill   string
}

// Neutral is returned for unknown statuses.
var Neutral = Style{
	Accent: "border-l-gray-400 text-gray-600",
	Badge:  "border-gray-300 text-gray-600 bg-gray-50",
	Pill:   "bg-gray-400 text-white",
}

var accent = map[models.Status]string{
	models.StatusTodo:       "border-l-gray-400 text-gray-600",
	models.StatusAssigned:   "border-l-blue-500 text-blue-600",
	models.StatusInProgress: "border-l-orange-400 text-orange-600",
	models.StatusOnHold:     "border-l-yellow-400 text-yellow-600",
	models.StatusCompleted:  "border-l-green-500 text-green-600",
	models.StatusCancelled:  "border-l-red-500 text-red-600",
}

var badge = map[models.Status]string{
	models.StatusTodo:       "border-gray-400 text-gray-700 bg-gray-50",
	models.StatusAssigned:   "border-blue-500 text-blue-700 bg-blue-50",
	models.StatusInProgress: "border-orange-400 text-orange-700 bg-orange-50",
	models.StatusOnHold:     "border-yellow-400 text-yellow-700 bg-yellow-50",
	models.StatusCompleted:  "border-green-500 text-green-700 bg-green-50",
	models.StatusCancelled:  "border-red-500 text-red-700 bg-red-50",
}

var pill = map[models.Status]string{
	models.StatusTodo:       "bg-gray-500 text-white border-gray-500",
	models.StatusAssigned:   "bg-blue-500 text-white border-blue-500",
	models.StatusInProgress: "bg-orange-400 text-white border-orange-400",
	models.StatusOnHold:     "bg-yellow-400 text-white border-yellow-400",
	models.StatusCompleted:  "bg-green-600 text-white border-green-600",
	models.StatusCancelled:  "bg-red-500 text-white border-red-500",
}

// For returns the style for s. Each context falls back to Neutral independently.
func For(s models.Status) Style {
	out := Neutral
	if v, ok := accent[s]; ok {
		out.Accent = v
	}
	if v, ok := badge[s]; ok {
		out.Badge = v
	}
	if v, ok := pill[s]; ok {
		out.Pill = v
	}
	return out
}

// Accent returns the card accent classes for s.
func Accent(s models.Status) string { return For(s).Accent }

// Badge returns the list badge classes for s.
func Badge(s models.Status) string { return For(s).Badge }

// Pill returns the notification pill classes for s.
func Pill(s models.Status) string { return For(s).Pill }

