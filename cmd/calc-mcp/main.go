package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

// envPrefix namespaces environment overrides, e.g. CALC_MCP_LOCALE
const envPrefix = "CALC_MCP"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	defaults := types.DefaultConfig()

	cmd := &cobra.Command{
		Use:           project.Name,
		Short:         "Two-operand calculator exposed as MCP tools",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newConfigViper(cmd.Flags())
			if err != nil {
				return err
			}
			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), config)
		},
	}

	flags := cmd.Flags()
	flags.String("locale", defaults.Locale, "BCP 47 locale used when an operand is not in invariant notation")
	flags.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("transport", defaults.Transport, "MCP transport (stdio, sse)")
	flags.String("address", defaults.Address, "Listen address for the sse transport")
	flags.String("base-url", defaults.BaseURL, "Public base URL advertised by the sse transport")
	flags.Int("max-sessions", defaults.MaxSessions, "Maximum number of open form sessions (0 for no limit)")

	return cmd
}

// newConfigViper layers environment variables over the command's flags
func newConfigViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// loadConfig merges flags, environment and defaults into a Config
func loadConfig(v *viper.Viper) (types.Config, error) {
	var config types.Config
	if err := v.Unmarshal(&config); err != nil {
		return types.Config{}, errors.Wrap(err, "failed to read configuration")
	}
	if err := config.Validate(); err != nil {
		return types.Config{}, errors.Wrap(err, "invalid configuration")
	}
	return config, nil
}

func run(ctx context.Context, config types.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}

	mcpServer, err := server.NewCalculatorServer(config, logger)
	if err != nil {
		return errors.Wrap(err, "failed to create server")
	}

	// Serve blocks until the transport closes or a signal arrives
	if err := mcpServer.Serve(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
