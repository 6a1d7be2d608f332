package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/hustle-tracker/api"
	"github.com/carson-networks/hustle-tracker/internal/config"
	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/insights"
	"github.com/carson-networks/hustle-tracker/internal/logging"
	"github.com/carson-networks/hustle-tracker/internal/operator"
	"github.com/carson-networks/hustle-tracker/internal/service"
	"github.com/carson-networks/hustle-tracker/internal/storage"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on, overrides PORT")
	serveCmd.Flags().String("log-level", "", "Log level, overrides LOG_LEVEL")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// app is the fully wired process.
type app struct {
	logger   *logrus.Logger
	operator *operator.OperatorDelegator
	rest     *api.Rest
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return errors.Wrap(err, "config.ProcessEnvironmentVariables")
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := build(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
}

func build(cfg *config.Config) (*app, error) {
	logger := logging.SetupLogging(cfg.LogLevel)

	users, err := cfg.Users()
	if err != nil {
		return nil, errors.Wrap(err, "config.Users")
	}

	store := storage.NewStorage(users...)
	op := operator.NewOperatorDelegator(store, logger, cfg.OperatorWorkers, cfg.OperatorQueueSize)
	resolver := identity.NewHeaderResolver(service.NewUserDirectory(store))
	svc := service.NewService(store, op, resolver, insights.NewStatic(), logger)

	logger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"users":   len(users),
		"workers": cfg.OperatorWorkers,
	}).Info("hustle-tracker configured")

	return &app{
		logger:   logger,
		operator: op,
		rest: &api.Rest{
			Logger:          logger,
			Port:            cfg.Port,
			Service:         svc,
			Resolver:        resolver,
			Operator:        op,
			MetricsEnabled:  cfg.MetricsEnabled,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
	}, nil
}

// run serves until ctx is done, then stops the operator once the server has
// drained.
func (a *app) run(ctx context.Context) error {
	a.operator.Start()
	defer a.operator.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.rest.Serve(gctx)
	})

	err := g.Wait()
	a.logger.Info("hustle-tracker stopped")
	return err
}
