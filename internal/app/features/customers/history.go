// internal/app/features/customers/history.go
package customers

import (
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/fieldhub/internal/app/features/errors"
	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/records"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type historyData struct {
	viewdata.BaseVM
	Customer models.Customer
	Rows     []viewdata.WorkOrderRow
	Input    records.WorkOrderInput
}

// ServeHistory handles GET /customers/{id}/history.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data, ok := h.historyData(r, id, records.WorkOrderInput{}, "")
	if !ok {
		uierrors.RenderNotFound(w, r, "That customer doesn't exist.", "/customers")
		return
	}
	templates.Render(w, r, "customers_history", data)
}

// HandleCreateWorkOrder handles POST /customers/{id}/work-orders. The new order
// is linked to the customer and shows up on every work-order page.
func (h *Handler) HandleCreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/customers/"+id+"/history")
		return
	}
	actor, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	in, err := records.ParseWorkOrderForm(r.PostForm)
	var verr *records.ValidationError
	if errors.As(err, &verr) {
		data, ok := h.historyData(r, id, in, verr.Message)
		if !ok {
			uierrors.RenderNotFound(w, r, "That customer doesn't exist.", "/customers")
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.Render(w, r, "customers_history", data)
		return
	}

	wo, err := h.Store.CreateWorkOrderForCustomer(r.Context(), id, in, actor)
	switch {
	case errors.Is(err, records.ErrCustomerNotFound):
		uierrors.RenderNotFound(w, r, "That customer doesn't exist.", "/customers")
		return
	case err != nil && !errors.Is(err, fieldstore.ErrNotPersisted):
		h.ErrLog.LogServerError(w, r, "create customer work order failed", err, "Could not create the work order.", "/customers/"+id+"/history")
		return
	}

	h.Log.Info("work order created",
		zap.String("id", wo.ID),
		zap.String("display_id", wo.DisplayID),
		zap.String("customer_id", id),
		zap.String("user_id", actor.ID))
	http.Redirect(w, r, "/customers/"+id+"/history", http.StatusSeeOther)
}

func (h *Handler) historyData(r *http.Request, id string, in records.WorkOrderInput, msg string) (historyData, bool) {
	c, ok := h.Store.CustomerByID(id)
	if !ok {
		return historyData{}, false
	}
	data := historyData{
		BaseVM:   viewdata.NewBaseVM(r, c.SiteName, "/customers"),
		Customer: c,
		Rows:     viewdata.WorkOrderRows(derive.OrdersForCustomer(h.Store.WorkOrders(), id)),
		Input:    in,
	}
	data.NavSection = "customers"
	data.CountUnread(h.Store.Notifications())
	data.SetError(msg)
	return data, true
}
