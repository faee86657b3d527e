// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FieldHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_backend, mongo_uri, etc.
//   - Environment variables: FIELDHUB_STORE_BACKEND, FIELDHUB_MONGO_URI, etc.
//   - Command-line flags: --store_backend, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "store_backend", Default: BackendMemory, Desc: "Record store: 'memory' or 'mongo'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo backend only)"},
	{Name: "mongo_database", Default: "fieldhub", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "fieldhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "12h", Desc: "Session cookie lifetime (e.g., 12h, 30m)"},

	{Name: "display_id_start", Default: 1000, Desc: "First #WO- display number when no work order exists"},
	{Name: "login_ip_attempts", Default: 10, Desc: "Sign-in attempts allowed per client IP each login_ip_window"},
	{Name: "login_ip_window", Default: "1m", Desc: "Window for login_ip_attempts"},
	{Name: "login_email_attempts", Default: 5, Desc: "Sign-in attempts allowed per email each login_email_window"},
	{Name: "login_email_window", Default: "5m", Desc: "Window for login_email_attempts"},

	{Name: "request_id_trust_header", Default: false, Desc: "Reuse an incoming X-Request-ID header"},

	{Name: "mongo_ping_timeout", Default: timeouts.DefaultPing.String(), Desc: "Deadline for MongoDB pings"},
	{Name: "mongo_short_timeout", Default: timeouts.DefaultShort.String(), Desc: "Deadline for single MongoDB writes"},
	{Name: "mongo_batch_timeout", Default: timeouts.DefaultBatch.String(), Desc: "Deadline for loading and seeding collections"},
}

// LoadConfig loads WAFFLE core config and FieldHub config.
//
// Precedence is flags > env (FIELDHUB_*) > config files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FIELDHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreBackend:  strings.ToLower(strings.TrimSpace(appValues.String("store_backend"))),
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 12*time.Hour),

		DisplayIDStart:       appValues.Int("display_id_start"),
		RequestIDTrustHeader: appValues.Bool("request_id_trust_header"),

		LoginIPAttempts:    appValues.Int("login_ip_attempts"),
		LoginIPWindow:      appValues.Duration("login_ip_window", time.Minute),
		LoginEmailAttempts: appValues.Int("login_email_attempts"),
		LoginEmailWindow:   appValues.Duration("login_email_window", 5*time.Minute),

		PingTimeout:  appValues.Duration("mongo_ping_timeout", timeouts.DefaultPing),
		ShortTimeout: appValues.Duration("mongo_short_timeout", timeouts.DefaultShort),
		BatchTimeout: appValues.Duration("mongo_batch_timeout", timeouts.DefaultBatch),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects an unknown backend, a malformed Mongo URI when the
// Mongo backend is selected, a non-positive display id start and
// non-positive sign-in limits.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case BackendMemory:
	case BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if strings.TrimSpace(appCfg.MongoDatabase) == "" {
			return fmt.Errorf("mongo_database is required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown store_backend %q (want %q or %q)", appCfg.StoreBackend, BackendMemory, BackendMongo)
	}

	if appCfg.DisplayIDStart <= 0 {
		return fmt.Errorf("display_id_start must be positive, got %d", appCfg.DisplayIDStart)
	}
	if appCfg.LoginIPAttempts <= 0 || appCfg.LoginEmailAttempts <= 0 {
		return fmt.Errorf("login_ip_attempts and login_email_attempts must be positive")
	}
	if appCfg.LoginIPWindow <= 0 || appCfg.LoginEmailWindow <= 0 {
		return fmt.Errorf("login_ip_window and login_email_window must be positive")
	}
	if len(appCfg.SessionKey) < 32 {
		logger.Warn("session_key is shorter than 32 bytes")
	}
	return nil
}
