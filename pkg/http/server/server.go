package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type Config struct {
	Port              int
	Timeout           time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	RateLimit         float64 // requests per second, used when rate limiting is enabled
	RateBurst         int
}

func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	if config.Timeout > 0 {
		handler = http.TimeoutHandler(handler, config.Timeout, `{"error":{"code":"timeout","message":"request timed out"}}`)
	}
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       config.ReadTimeout,
		WriteTimeout:      config.Timeout + config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
}
