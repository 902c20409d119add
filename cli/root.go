package cli

import (
	"fmt"
	"strings"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/clients"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Config   *config.Config
	APIURL   string
	Variant  string
	LogLevel string

	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	cfg := config.LoadConfig()
	app := &App{Config: cfg}

	cmd := &cobra.Command{
		Use:          "shopcarts",
		Short:        "Shopcart admin console and tooling",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Serve the admin console against a running shopcart API
  shopcarts serve --api-url http://localhost:8081

  # Run a single console action from the terminal
  shopcarts do create-shopcart --customer-id 42

  # Start an in-memory shopcart API for local work
  shopcarts stub-api --variant root
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(app.LogLevel)
		if err != nil {
			return err
		}
		app.logger = logger
		zap.ReplaceGlobals(logger)

		if strings.EqualFold(app.LogLevel, "debug") {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.logger != nil {
			_ = app.logger.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api-url", cfg.ShopcartAPIURL, "Base URL of the shopcart REST API")
	cmd.PersistentFlags().StringVar(&app.Variant, "variant", cfg.APIVariant, "API layout (api|root)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newDoCmd(app))
	cmd.AddCommand(newActivityCmd(app))
	cmd.AddCommand(newStubAPICmd(app))

	return cmd
}

func (a *App) variant() (clients.Variant, error) {
	return clients.VariantByName(a.Variant)
}

func (a *App) newClient() (*clients.ShopcartClient, clients.Variant, error) {
	v, err := a.variant()
	if err != nil {
		return nil, clients.Variant{}, err
	}
	return clients.NewShopcartClient(a.APIURL, v), v, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
