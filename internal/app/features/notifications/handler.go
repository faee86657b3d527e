// internal/app/features/notifications/handler.go
package notifications

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/statusstyle"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Store *fieldstore.Store
	Log   *zap.Logger
}

func NewHandler(store *fieldstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

type filterTab struct {
	Filter derive.ReadFilter
	Label  string
	Count  int
	Active bool
}

type item struct {
	models.Notification
	FromPill string
	ToPill   string
}

type feedData struct {
	viewdata.BaseVM
	Filters []filterTab
	Items   []item
}

// ServeFeed handles GET /notifications?filter=all|read|unread.
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "notifications", h.feedData(r))
}

func (h *Handler) feedData(r *http.Request) feedData {
	active := derive.ParseReadFilter(query.Get(r, "filter"))
	all := h.Store.Notifications()

	data := feedData{BaseVM: viewdata.NewBaseVM(r, "Notifications", "/")}
	for _, f := range []struct {
		filter derive.ReadFilter
		label  string
	}{
		{derive.FilterAll, "All"},
		{derive.FilterRead, "Read"},
		{derive.FilterUnread, "Unread"},
	} {
		data.Filters = append(data.Filters, filterTab{
			Filter: f.filter,
			Label:  f.label,
			Count:  len(derive.FilterNotifications(all, f.filter)),
			Active: f.filter == active,
		})
	}

	for _, n := range derive.FilterNotifications(all, active) {
		it := item{Notification: n}
		if n.IsStatusChange() {
			it.FromPill = statusstyle.Pill(n.FromStatus)
			it.ToPill = statusstyle.Pill(n.ToStatus)
		}
		data.Items = append(data.Items, it)
	}

	data.NavSection = "notifications"
	data.CountUnread(all)
	return data
}
