package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"customer-support-agent/config"
	"customer-support-agent/internal/app"
	"customer-support-agent/pkg/log"
)

const Version = "0.1.0"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "chatctl",
	Short: "chatctl - operate the customer support agent from the terminal",
	Long: `chatctl runs the support pipeline locally: ask one-off questions,
seed and inspect the order store, or serve the support tools to an
assistant over the Model Context Protocol.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: ./config/config.yaml, ./config.yaml or /etc/app/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(mcpCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// newLogger writes to stderr so stdout stays clean for command output and the MCP transport.
func newLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:    logLevel,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})
}

func loadApp(ctx context.Context) (*app.App, log.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	l := newLogger(cfg)

	a, err := app.New(ctx, cfg, l, prometheus.NewRegistry())
	if err != nil {
		return nil, nil, err
	}
	return a, l, nil
}
