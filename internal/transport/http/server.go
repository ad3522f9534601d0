// Package httptransport builds the HTTP server for the wrapped API.
package httptransport

import (
	"net/http"
	"time"
)

// Bound on reading request headers. The configured read timeout covers the
// export upload body and is far too generous for headers alone.
const headerReadTimeout = 10 * time.Second

// ServerConfig contains tunables for the HTTP server. Read and write
// timeouts are sized for multi-hundred-megabyte export uploads.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer creates the *http.Server serving the wrapped API.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: headerReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
