// internal/app/features/workorders/new.go
package workorders

import (
	"errors"
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/navigation"
	"github.com/dalemusser/fieldhub/internal/app/system/records"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type newData struct {
	viewdata.BaseVM
	Input     records.WorkOrderInput
	Customers []models.Customer
}

// ServeNew handles GET /work-orders/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNew(w, r, http.StatusOK, records.WorkOrderInput{}, "")
}

// HandleCreate handles POST /work-orders. A missing issue title re-renders the
// form with the submitted values and writes nothing.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/work-orders/new")
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
		h.renderNew(w, r, http.StatusUnprocessableEntity, in, verr.Message)
		return
	}

	wo, err := h.Store.CreateWorkOrder(r.Context(), in, actor)
	if err != nil && !errors.Is(err, fieldstore.ErrNotPersisted) {
		h.ErrLog.LogServerError(w, r, "create work order failed", err, "Could not create the work order.", "/work-orders")
		return
	}

	h.Log.Info("work order created",
		zap.String("id", wo.ID),
		zap.String("display_id", wo.DisplayID),
		zap.String("user_id", actor.ID))
	http.Redirect(w, r, "/work-orders/"+wo.ID, http.StatusSeeOther)
}

func (h *Handler) renderNew(w http.ResponseWriter, r *http.Request, status int, in records.WorkOrderInput, msg string) {
	data := newData{
		BaseVM:    viewdata.NewBaseVM(r, "New Work Order", "/work-orders"),
		Input:     in,
		Customers: h.Store.Customers(),
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.WorkOrdersBackURL)
	data.NavSection = "workorders"
	data.CountUnread(h.Store.Notifications())
	data.SetError(msg)
	w.WriteHeader(status)
	templates.Render(w, r, "workorders_new", data)
}
