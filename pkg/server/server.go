// Package server wires the HTTP API of the inventory panel.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/inventario26/cronograma-go/pkg/cache"
	"github.com/inventario26/cronograma-go/pkg/handlers/schedule"
	panelmiddleware "github.com/inventario26/cronograma-go/pkg/server/middleware"
)

// defaultShutdownTimeout bounds the drain of in-flight requests.
const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Fetcher  schedule.Fetcher
	Reports  *cache.Cache
	Defaults schedule.Defaults
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// NewWebAPI builds the router: request logging, panic recovery and the
// /api/v1 schedule routes.
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	scheduleHandler := schedule.NewHandler(
		config.Dependencies.Fetcher,
		config.Dependencies.Reports,
		config.Dependencies.Defaults,
	)

	router := chi.NewRouter()

	router.Use(panelmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/schedule/report", scheduleHandler.GetReport)
		r.Post("/schedule/report", scheduleHandler.UploadReport)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: shutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Start serves until the listener fails or the process is interrupted,
// then drains in-flight requests.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
