// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	customersfeature "github.com/dalemusser/fieldhub/internal/app/features/customers"
	dashboardfeature "github.com/dalemusser/fieldhub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/fieldhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/fieldhub/internal/app/features/health"
	historyfeature "github.com/dalemusser/fieldhub/internal/app/features/history"
	loginfeature "github.com/dalemusser/fieldhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/fieldhub/internal/app/features/logout"
	notificationsfeature "github.com/dalemusser/fieldhub/internal/app/features/notifications"
	profilefeature "github.com/dalemusser/fieldhub/internal/app/features/profile"
	workordersfeature "github.com/dalemusser/fieldhub/internal/app/features/workorders"
	loginstore "github.com/dalemusser/fieldhub/internal/app/store/logins"
	"github.com/dalemusser/fieldhub/internal/app/system/auth"
	"github.com/dalemusser/fieldhub/internal/app/system/ratelimit"
	"github.com/dalemusser/fieldhub/internal/app/system/reqlog"
	"github.com/dalemusser/fieldhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for FieldHub.
//
// WAFFLE calls this after configuration, DB connections, schema setup and
// Startup have completed. It builds the record store, boots the template
// engine, applies session and request-logging middleware and mounts the
// feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	store, err := buildStore(appCfg, deps, logger)
	if err != nil {
		logger.Error("record store init failed", zap.Error(err))
		return nil, err
	}
	sessionMgr.SetUserLookup(store)

	// Dev mode enables template reloading.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// Sign-in history needs somewhere to live; it is kept only with Mongo.
	var (
		loginRecorder loginfeature.LoginRecorder
		loginHistory  profilefeature.LoginHistory
	)
	if deps.MongoDatabase != nil {
		logins := loginstore.New(deps.MongoDatabase)
		loginRecorder = logins
		loginHistory = logins
	}

	limiter := ratelimit.NewLoginLimiter(
		appCfg.LoginIPAttempts, appCfg.LoginIPWindow,
		appCfg.LoginEmailAttempts, appCfg.LoginEmailWindow)
	startWorker(workers.NewPruneWorker("login-limiter", limiter, logger, appCfg.LoginIPWindow))

	r := chi.NewRouter()
	r.Use(reqlog.RequestID(appCfg.RequestIDTrustHeader))
	r.Use(sessionMgr.LoadSessionUser)
	r.Use(reqlog.Logger(logger))

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(store, sessionMgr, errLog, loginRecorder, limiter, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Dashboard
	dashboardHandler := dashboardfeature.NewHandler(store, logger)
	r.Mount("/", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Records
	workOrdersHandler := workordersfeature.NewHandler(store, errLog, logger)
	r.Mount("/work-orders", workordersfeature.Routes(workOrdersHandler, sessionMgr))

	customersHandler := customersfeature.NewHandler(store, errLog, logger)
	r.Mount("/customers", customersfeature.Routes(customersHandler, sessionMgr))

	// Feeds
	notificationsHandler := notificationsfeature.NewHandler(store, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler, sessionMgr))

	historyHandler := historyfeature.NewHandler(store, logger)
	r.Mount("/history", historyfeature.Routes(historyHandler, sessionMgr))

	profileHandler := profilefeature.NewHandler(store, loginHistory, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	return r, nil
}
