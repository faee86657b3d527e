// internal/app/features/history/handler.go
package history

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
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

type historyData struct {
	viewdata.BaseVM
	Query string
	Rows  []viewdata.WorkOrderRow
}

// ServeHistory handles GET /history?q=. Only Completed and Cancelled orders are listed.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "history", h.historyData(r))
}

func (h *Handler) historyData(r *http.Request) historyData {
	g, _ := derive.GroupByKey(derive.GroupHistory)
	q := query.Get(r, "q")

	data := historyData{
		BaseVM: viewdata.NewBaseVM(r, "History", "/"),
		Query:  q,
		Rows:   viewdata.WorkOrderRows(derive.FilterWorkOrders(h.Store.WorkOrders(), g, q)),
	}
	data.NavSection = "history"
	data.CountUnread(h.Store.Notifications())
	return data
}
