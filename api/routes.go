package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/access"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/insight"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/source"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/hustle-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/logging"
	"github.com/carson-networks/hustle-tracker/internal/operator"
	"github.com/carson-networks/hustle-tracker/internal/service"
)

type Rest struct {
	Logger          *logrus.Logger
	Port            string
	Service         *service.Service
	Resolver        identity.Resolver
	Operator        *operator.OperatorDelegator
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// Handler returns the chi router with every route mounted.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(instrument)

	statusHandler := status.NewHandler(r.Operator)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	if r.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	config := huma.DefaultConfig("Hustle Tracker API", "1.0.0")
	// Keep response bodies free of the $schema link field.
	config.CreateHooks = nil
	api := humachi.New(router, config)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	api.UseMiddleware(access.Middleware(api, r.Resolver))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewSetStatusHandler(r.Service.Transaction).Register(api)
	transaction.NewEditTransactionHandler(r.Service.Transaction).Register(api)
	source.NewListSourcesHandler(r.Service.Source).Register(api)
	source.NewCreateSourceHandler(r.Service.Source).Register(api)
	source.NewDeleteSourceHandler(r.Service.Source).Register(api)
	summary.NewGetSummaryHandler(r.Service.Summary).Register(api)
	insight.NewListInsightsHandler(r.Service.Insight).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests for
// up to ShutdownTimeout.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
