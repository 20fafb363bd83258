package constants

import "time"

type ContextKey string

const TraceIDKey ContextKey = "trace_id"

const (
	SessionCookieName = "vw_session"

	DefaultMaxRequestSize = 1 << 20

	DefaultHTTPPort       = "8080"
	DefaultSessionSecret  = "dev-secret-change-me"
	DefaultMongoDatabase  = "valentine_week"
	DefaultCORSOrigins    = "http://localhost:5173"
	DefaultRequestTimeout = 5 * time.Second

	MongoConnectTimeout  = 15 * time.Second
	MongoConnectAttempts = 10
	MongoConnectDelay    = 1 * time.Second
	MongoWriteTimeout    = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second
)
