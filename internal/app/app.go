package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/fetcher"
	"github.com/nishanrajkantan/insta-saver/internal/fetcher/fetcherimpl"
	"github.com/nishanrajkantan/insta-saver/internal/instaweb"
	"github.com/nishanrajkantan/insta-saver/internal/instaweb/instawebimpl"
	"github.com/nishanrajkantan/insta-saver/internal/resolver"
	"github.com/nishanrajkantan/insta-saver/internal/resolver/resolverimpl"
	"github.com/nishanrajkantan/insta-saver/internal/server"
	"github.com/nishanrajkantan/insta-saver/pkg/config"
	"github.com/nishanrajkantan/insta-saver/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			fetcherimpl.New,
			fx.As(new(fetcher.Client)),
		),
		fx.Annotate(
			instawebimpl.New,
			fx.As(new(instaweb.Client)),
		),
		fx.Annotate(
			resolverimpl.New,
			fx.As(new(resolver.Client)),
		),
		server.New,
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, srv *server.Server) {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("Starting HTTP server", "addr", httpServer.Addr)
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return httpServer.Shutdown(ctx)
		},
	})
}
