// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Store backends accepted by store_backend.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// AppConfig holds FieldHub-specific configuration. WAFFLE's CoreConfig covers
// ports, TLS, log level and the rest of the framework settings.
type AppConfig struct {
	// Backend selection: "memory" keeps every record in process, "mongo"
	// loads from and mirrors to MongoDB.
	StoreBackend  string
	MongoURI      string
	MongoDatabase string

	// Session cookie
	SessionKey    string
	SessionName   string // default: fieldhub-session
	SessionDomain string // blank means current host
	SessionMaxAge time.Duration

	// First display number handed out when no order exists yet (#WO-1000).
	DisplayIDStart int

	// Sign-in throttling: attempts allowed per window, by client IP and by email.
	LoginIPAttempts    int
	LoginIPWindow      time.Duration
	LoginEmailAttempts int
	LoginEmailWindow   time.Duration

	// Trust an incoming X-Request-ID instead of always minting one.
	RequestIDTrustHeader bool

	// MongoDB call deadlines; zero keeps the timeouts package default.
	PingTimeout  time.Duration
	ShortTimeout time.Duration
	BatchTimeout time.Duration
}

// UsesMongo reports whether the Mongo backend is selected.
func (c AppConfig) UsesMongo() bool {
	return c.StoreBackend == BackendMongo
}
