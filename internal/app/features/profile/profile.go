// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"

	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/derive"
	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const recentLogins = 5

type profileData struct {
	viewdata.BaseVM
	User     models.User
	Open     int
	Finished int
	Logins   []models.LoginRecord
}

// ServeProfile renders the signed-in user's card.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	data, ok := h.profileData(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "profile", data)
}

func (h *Handler) profileData(r *http.Request) (profileData, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return profileData{}, false
	}

	history, _ := derive.GroupByKey(derive.GroupHistory)
	data := profileData{
		BaseVM: viewdata.NewBaseVM(r, "Profile", "/"),
		User:   u,
	}
	for _, wo := range h.Store.WorkOrders() {
		if wo.AssignedUser.ID != u.ID {
			continue
		}
		if derive.MatchesGroup(wo, history.Statuses) {
			data.Finished++
		} else {
			data.Open++
		}
	}

	if h.Logins != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		recs, err := h.Logins.Recent(ctx, u.ID, recentLogins)
		if err != nil {
			h.Log.Warn("profile: recent logins", zap.String("user_id", u.ID), zap.Error(err))
		}
		data.Logins = recs
	}

	data.NavSection = "profile"
	data.CountUnread(h.Store.Notifications())
	return data, true
}
