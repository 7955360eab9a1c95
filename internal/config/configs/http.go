package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. ShutdownTimeout bounds how long
// in-flight requests may run once a termination signal arrives.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout is the graceful shutdown deadline. Defaults to 5s.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// AllowedOrigins are the browser origins allowed to open event
	// streams. "*" allows any; empty allows same-origin only.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}
