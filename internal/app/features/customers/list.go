// internal/app/features/customers/list.go
package customers

import (
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

type customerRow struct {
	models.Customer
	OrderCount int
}

type listData struct {
	viewdata.BaseVM
	Query string
	Rows  []customerRow
	Total int
}

// ServeList handles GET /customers?q=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "customers_list", h.listData(r))
}

func (h *Handler) listData(r *http.Request) listData {
	q := query.Get(r, "q")
	all := h.Store.Customers()
	orders := h.Store.WorkOrders()

	matched := derive.FilterCustomers(all, q)
	rows := make([]customerRow, 0, len(matched))
	for _, c := range matched {
		rows = append(rows, customerRow{Customer: c, OrderCount: len(derive.OrdersForCustomer(orders, c.ID))})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Customers", "/"),
		Query:  q,
		Rows:   rows,
		Total:  len(all),
	}
	data.NavSection = "customers"
	data.CountUnread(h.Store.Notifications())
	return data
}
