package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/tripartition/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/tripartition/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/tripartition/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router and the middleware chain without starting a server.
func (api *API) Handler(config http_server.Config, useRateLimit bool, partitionService controllers.PartitionService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	partitionRoutes := controllers.New(partitionService, api.log)
	partitionRoutes.Routes(group)

	var mwChain []alice.Constructor
	mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		Heartbeat("healthz"), Logger(api.log))
	if useRateLimit {
		mwChain = append(mwChain, Limit(config.RateLimit, config.RateBurst))
	}
	return alice.New(mwChain...).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	useRateLimit bool,
	partitionService controllers.PartitionService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(config, useRateLimit, partitionService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}
