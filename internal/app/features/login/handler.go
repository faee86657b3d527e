// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/fieldhub/internal/app/features/errors"
	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"github.com/dalemusser/fieldhub/internal/app/system/viewdata"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// ProviderTrust is recorded for email-only sign-ins.
const ProviderTrust = "trust"

// LoginRecorder stores a sign-in event. The Mongo backend supplies one.
type LoginRecorder interface {
	RecordSignIn(ctx context.Context, r *http.Request, userID, provider string) error
}

// AttemptLimiter throttles sign-in attempts per client and per email.
type AttemptLimiter interface {
	Check(r *http.Request, email string) (bool, string)
	ResetEmail(email string)
}

type Handler struct {
	Store      *fieldstore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Logins     LoginRecorder // nil with the memory backend
	Limiter    AttemptLimiter
	Log        *zap.Logger
}

type loginFormData struct {
	viewdata.BaseVM
	Email     string
	ReturnURL string
	Accounts  []models.User
}

func NewHandler(store *fieldstore.Store, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logins LoginRecorder, limiter AttemptLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Store:      store,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Logins:     logins,
		Limiter:    limiter,
		Log:        logger,
	}
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "", "", query.Get(r, "return"))
}

// HandleLoginPost handles POST /login. Any seeded account may sign in by email.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	ret := strings.TrimSpace(r.FormValue("return"))
	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, email); !ok {
			h.Log.Warn("login: rate limited", zap.String("email", email))
			h.render(w, r, http.StatusTooManyRequests, reason, email, ret)
			return
		}
	}
	if email == "" {
		h.render(w, r, http.StatusUnprocessableEntity, "Please enter your email.", email, ret)
		return
	}

	u, ok := h.Store.UserByEmail(email)
	if !ok {
		h.Log.Info("login: unknown email", zap.String("email", email))
		h.render(w, r, http.StatusUnprocessableEntity, "No account found for that email.", email, ret)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, u); err != nil {
		h.ErrLog.LogServerError(w, r, "login: save session", err, "Could not sign you in. Please try again.", "/login")
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(email)
	}

	if h.Logins != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if err := h.Logins.RecordSignIn(ctx, r, u.ID, ProviderTrust); err != nil {
			h.Log.Warn("login: record sign-in", zap.String("user_id", u.ID), zap.Error(err))
		}
	}

	h.Log.Info("user signed in", zap.String("user_id", u.ID))
	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/"), http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, msg, email, ret string) {
	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Email:     email,
		ReturnURL: urlutil.SafeReturn(ret, "", ""),
		Accounts:  h.Store.Users(),
	}
	data.SetError(msg)
	w.WriteHeader(status)
	templates.Render(w, r, "login", data)
}
