// internal/app/features/customers/form.go
package customers

import (
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/fieldhub/internal/app/features/errors"
	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/navigation"
	"github.com/dalemusser/fieldhub/internal/app/system/records"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type formData struct {
	viewdata.BaseVM
	ID     string // empty when adding
	Action string
	Input  records.CustomerInput
}

// ServeNew handles GET /customers/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "", records.CustomerInput{}, "")
}

// HandleCreate handles POST /customers.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/customers")
		return
	}
	in := records.ParseCustomerForm(r.PostForm)

	c, err := h.Store.CreateCustomer(r.Context(), in)
	var verr *records.ValidationError
	switch {
	case errors.As(err, &verr):
		h.renderForm(w, r, http.StatusUnprocessableEntity, "", in, verr.Message)
		return
	case err != nil && !errors.Is(err, fieldstore.ErrNotPersisted):
		h.ErrLog.LogServerError(w, r, "create customer failed", err, "Could not add the customer.", "/customers")
		return
	}

	h.Log.Info("customer created", zap.String("id", c.ID))
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

// ServeEdit handles GET /customers/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := h.Store.CustomerByID(id)
	if !ok {
		uierrors.RenderNotFound(w, r, "That customer doesn't exist.", "/customers")
		return
	}
	in := records.CustomerInput{
		SiteName:     c.SiteName,
		Address:      c.Address,
		Postcode:     c.Postcode,
		ContactName:  c.ContactName,
		ContactPhone: c.ContactPhone,
	}
	h.renderForm(w, r, http.StatusOK, id, in, "")
}

// HandleEdit handles POST /customers/{id}/edit.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/customers")
		return
	}
	in := records.ParseCustomerForm(r.PostForm)

	_, err := h.Store.UpdateCustomer(r.Context(), id, in)
	var verr *records.ValidationError
	switch {
	case errors.Is(err, records.ErrCustomerNotFound):
		uierrors.RenderNotFound(w, r, "That customer doesn't exist.", "/customers")
		return
	case errors.As(err, &verr):
		h.renderForm(w, r, http.StatusUnprocessableEntity, id, in, verr.Message)
		return
	case err != nil && !errors.Is(err, fieldstore.ErrNotPersisted):
		h.ErrLog.LogServerError(w, r, "update customer failed", err, "Could not save the customer.", "/customers")
		return
	}

	h.Log.Info("customer updated", zap.String("id", id))
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.CustomersBackURL), http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, id string, in records.CustomerInput, msg string) {
	title, action := "Add Customer", "/customers"
	if id != "" {
		title, action = "Edit Customer", "/customers/"+id+"/edit"
	}
	data := formData{
		BaseVM: viewdata.NewBaseVM(r, title, "/customers"),
		ID:     id,
		Action: action,
		Input:  in,
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.CustomersBackURL)
	data.NavSection = "customers"
	data.CountUnread(h.Store.Notifications())
	data.SetError(msg)
	w.WriteHeader(status)
	templates.Render(w, r, "customers_form", data)
}
