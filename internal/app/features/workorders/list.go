// internal/app/features/workorders/list.go
package workorders

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

type listData struct {
	viewdata.BaseVM
	Tabs   []derive.TabCount
	Active derive.Group
	Query  string
	Rows   []viewdata.WorkOrderRow
}

// ServeList handles GET /work-orders?tab=&q=. Unknown tabs fall back to New.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "workorders_list", h.listData(r))
}

func (h *Handler) listData(r *http.Request) listData {
	g, ok := derive.GroupByKey(query.Get(r, "tab"))
	if !ok {
		g, _ = derive.GroupByKey(derive.GroupNew)
	}
	q := query.Get(r, "q")
	orders := h.Store.WorkOrders()

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Work Orders", "/"),
		Tabs:   derive.TabCounts(orders, g.Key),
		Active: g,
		Query:  q,
		Rows:   viewdata.WorkOrderRows(derive.FilterWorkOrders(orders, g, q)),
	}
	data.NavSection = "workorders"
	data.CountUnread(h.Store.Notifications())
	return data
}
