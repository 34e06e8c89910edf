package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/tripartition/pkg/http/router"
	"github.com/lintang-b-s/tripartition/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/tripartition/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func ConfigFromViper() http_server.Config {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "120s")
	viper.SetDefault("API_RATE_LIMIT", 20.0)
	viper.SetDefault("API_RATE_BURST", 40)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "120s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "10s")

	return http_server.Config{
		Port:              viper.GetInt("API_PORT"),
		Timeout:           viper.GetDuration("API_TIMEOUT"),
		ReadTimeout:       viper.GetDuration("HTTP_SERVER_READ_TIMEOUT"),
		WriteTimeout:      viper.GetDuration("HTTP_SERVER_WRITE_TIMEOUT"),
		IdleTimeout:       viper.GetDuration("HTTP_SERVER_IDLE_TIMEOUT"),
		ReadHeaderTimeout: viper.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT"),
		RateLimit:         viper.GetFloat64("API_RATE_LIMIT"),
		RateBurst:         viper.GetInt("API_RATE_BURST"),
	}
}

// Use starts the API in the background, Wait returns its error once ctx is canceled.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	partitionService controllers.PartitionService,

) (*Server, error) {
	config := ConfigFromViper()

	server := http_router.NewAPI(log)

	s.g = &errgroup.Group{}
	s.g.Go(func() error {
		return server.Run(
			ctx, config,
			useRateLimit, partitionService,
		)
	})

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

// GracefulShutdown blocks until SIGINT or SIGTERM arrives.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
