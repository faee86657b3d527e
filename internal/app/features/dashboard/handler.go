// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// recentLimit is how many orders the dashboard previews.
const recentLimit = 5

type Handler struct {
	Store *fieldstore.Store
	Log   *zap.Logger
}

type dashboardData struct {
	viewdata.BaseVM
	Tiles  []derive.StatusCount
	Total  int
	Recent []viewdata.WorkOrderRow
}

func NewHandler(store *fieldstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

// ServeDashboard renders the status tiles. Counts are derived on every request.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := h.dashboardData(r)
	h.Log.Debug("dashboard served", zap.String("user", data.UserName), zap.Int("orders", data.Total))
	templates.Render(w, r, "dashboard", data)
}

func (h *Handler) dashboardData(r *http.Request) dashboardData {
	orders := h.Store.WorkOrders()

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
		Tiles:  derive.StatusCounts(orders),
		Total:  len(orders),
	}
	data.NavSection = "dashboard"
	data.CountUnread(h.Store.Notifications())
	if len(orders) > recentLimit {
		orders = orders[:recentLimit]
	}
	data.Recent = viewdata.WorkOrderRows(orders)
	return data
}
