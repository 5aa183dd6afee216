package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyetube/hyemockd/pkg/config"
	"github.com/hyetube/hyemockd/pkg/engine"
	"github.com/hyetube/hyemockd/pkg/logging"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 30 * time.Second

// serveFlags holds the flag values bound to the serve command.
type serveFlags struct {
	port         int
	dataDir      string
	configFile   string
	logLevel     string
	logFormat    string
	readTimeout  int
	writeTimeout int
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock server (foreground)",
	Example: `  # Start with defaults on :8080
  hyemockd serve

  # Custom port and asset directory
  hyemockd serve --port 3000 --data ./fixtures

  # Load settings from a config file
  hyemockd serve --config hyemockd.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	f := &serveFlagVals
	cmd.Flags().IntVarP(&f.port, "port", "p", config.DefaultPort, "HTTP server port")
	cmd.Flags().StringVar(&f.dataDir, "data", config.DefaultDataDir, "Directory holding reference assets")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
	cmd.Flags().IntVar(&f.readTimeout, "read-timeout", config.DefaultReadTimeout, "Read timeout in seconds")
	cmd.Flags().IntVar(&f.writeTimeout, "write-timeout", config.DefaultWriteTimeout, "Write timeout in seconds")
}

func runServe(cmd *cobra.Command) error {
	cfg := config.Default()

	if serveFlagVals.configFile != "" {
		loaded, err := config.LoadFromFile(serveFlagVals.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override file values only when explicitly set.
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = serveFlagVals.port
	}
	if flags.Changed("data") {
		cfg.DataDir = serveFlagVals.dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = serveFlagVals.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = serveFlagVals.logFormat
	}
	if flags.Changed("read-timeout") {
		cfg.ReadTimeout = serveFlagVals.readTimeout
	}
	if flags.Changed("write-timeout") {
		cfg.WriteTimeout = serveFlagVals.writeTimeout
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv := engine.NewServer(cfg, engine.WithLogger(log))
	if err := srv.Start(); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(ctx)
}
