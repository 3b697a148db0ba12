// tilegrid loads a text tile map and lets a single player walk it.
//
// Usage:
//
//	tilegrid play [--level name | --map path] [--backend ebiten|terminal]
//	tilegrid check <map>         - Validate a map and print a preview
//	tilegrid simulate --script s - Run a map headlessly with scripted input
//	tilegrid maps                - List built-in maps
//
// Global flags:
//
//	--config <path>     - Settings file (default: built-in settings.yaml)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
//	--trace             - Export OpenTelemetry spans over OTLP HTTP
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilegrid/internal/infrastructure/telemetry"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagTrace    bool

	logger          = newLogger(os.Stderr)
	logFile         *os.File
	shutdownTracing func(context.Context) error
)

func main() {
	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when a command fails
	_ = teardown(rootCmd, nil)
	if err != nil {
		logger.Error("tilegrid failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilegrid",
	Short: "tilegrid - walk a tile map",
	Long: `tilegrid renders a text tile map scaled to the window and lets a
single player move across it with the arrow keys or WASD. Escape quits.

Map symbols:
  _  empty
  %  floor
  |  wall
  @  floor with the player spawn

Examples:
  tilegrid play
  tilegrid play --level tiny --backend terminal
  tilegrid check ./my.map
  tilegrid simulate --level tiny --script "r r*3 esc"`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "Export traces over OTLP HTTP (OTEL_EXPORTER_OTLP_* env)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(mapsCmd)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilegrid",
	})
}

// setup loads .env, configures logging and optionally tracing
func setup(cmd *cobra.Command, args []string) error {
	// .env is optional; variables may be set directly
	envErr := godotenv.Load()

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if envErr != nil {
		logger.Debug(".env not loaded", "err", envErr)
	}

	if flagTrace {
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			// Not fatal, run without traces
			logger.Warn("telemetry setup failed", "err", err)
		} else {
			shutdownTracing = shutdown
		}
	}

	return nil
}

// teardown flushes traces and closes the log file
func teardown(cmd *cobra.Command, args []string) error {
	if shutdownTracing != nil {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "err", err)
		}
		shutdownTracing = nil
	}
	if logFile != nil {
		logger.SetOutput(os.Stderr)
		logFile.Close()
		logFile = nil
	}
	return nil
}
