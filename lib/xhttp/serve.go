// Package xhttp holds the small HTTP server used by watch mode.
package xhttp

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"oss.terrastruct.com/xcontext"
)

// The watch server only ever receives small GET requests.
const (
	maxHeaderBytes = 1 << 16
	maxBodyBytes   = 1 << 16
)

func NewServer(errLog *log.Logger, h http.Handler) *http.Server {
	return &http.Server{
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: time.Minute,
		ReadTimeout:       time.Minute,
		IdleTimeout:       time.Hour,
		ErrorLog:          errLog,
		Handler:           http.MaxBytesHandler(h, maxBodyBytes),
	}
}

// Listen listens on host:port. Empty values default to localhost and a
// random free port.
func Listen(host, port string) (net.Listener, error) {
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "0"
	}
	return net.Listen("tcp", net.JoinHostPort(host, port))
}

// Serve serves on l until ctx is canceled and then shuts s down, giving
// in flight requests up to shutdownTimeout.
func Serve(ctx context.Context, shutdownTimeout time.Duration, s *http.Server, l net.Listener) error {
	s.BaseContext = func(net.Listener) context.Context {
		return ctx
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(l)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		ctx = xcontext.WithoutCancel(ctx)
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx)
	}
}
