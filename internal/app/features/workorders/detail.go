// internal/app/features/workorders/detail.go
package workorders

import (
	"net/http"

	uierrors "github.com/dalemusser/fieldhub/internal/app/features/errors"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/navigation"
	"github.com/dalemusser/fieldhub/internal/app/system/statusstyle"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

type detailData struct {
	viewdata.BaseVM
	Order    viewdata.WorkOrderRow
	Tab      string
	Customer *models.Customer
}

// ServeDetail handles GET /work-orders/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	data, ok := h.detailData(r, chi.URLParam(r, "id"))
	if !ok {
		uierrors.RenderNotFound(w, r, "That work order doesn't exist.", "/work-orders")
		return
	}
	templates.Render(w, r, "workorders_detail", data)
}

func (h *Handler) detailData(r *http.Request, id string) (detailData, bool) {
	wo, ok := h.Store.WorkOrderByID(id)
	if !ok {
		return detailData{}, false
	}
	st := statusstyle.For(wo.Status)
	data := detailData{
		BaseVM: viewdata.NewBaseVM(r, wo.DisplayID, "/work-orders"),
		Order:  viewdata.WorkOrderRow{WorkOrder: wo, Accent: st.Accent, Badge: st.Badge},
	}
	if g, ok := derive.GroupOf(wo.Status); ok {
		data.Tab = g.Label
	}
	if c, ok := h.Store.CustomerByID(wo.CustomerID); ok {
		data.Customer = &c
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.WorkOrdersBackURL)
	data.NavSection = "workorders"
	data.CountUnread(h.Store.Notifications())
	return data, true
}
