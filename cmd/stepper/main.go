// Stepper is an interactive demo of the bounded value editor.
//
// It shows one stepper control bound to an integer, with the defaults
// taken from the configuration file and overridden by flags.
//
// Usage:
//
//	stepper [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'stepper --help' for available commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/muurk/stepper/internal/config"
	"github.com/muurk/stepper/internal/logging"
	"github.com/muurk/stepper/internal/ui"
	"github.com/muurk/stepper/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(os.Stderr).PrintError("stepper failed", err)
		os.Exit(1)
	}
}

const defaultLogFile = "stepper.log"

var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "stepper",
	Short: "Bounded integer stepper",
	Long: `An interactive terminal control for editing a bounded integer.

Tap the - and + glyphs (or press -/+) to step the value, hold a glyph to
keep stepping, or press enter to type a number directly. Values outside
the configured range are rejected with an alert.

If no command is specified, the interactive editor launches.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runEditor,
}

func init() {
	// Assigned here rather than in the literal: logPath refers to rootCmd,
	// which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, err := logPath(cmd)
		if err != nil {
			return err
		}
		return logging.Initialize(logLevel, path)
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Defaults file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (the editor defaults to stepper.log in the config directory)")

	rootCmd.AddCommand(versionCmd)
}

// logPath picks the log destination for cmd. The interactive editor owns
// the terminal, so when logging is on and no file was named it logs to
// stepper.log in the config directory instead of stderr.
func logPath(cmd *cobra.Command) (string, error) {
	if logFile != "" || cmd != rootCmd || os.Getenv(logging.LogFileEnvVar) != "" {
		return logFile, nil
	}
	if logLevel == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		return "", nil
	}

	dir, err := config.DefaultDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return filepath.Join(dir, defaultLogFile), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stepper %s\n", version.Full())
	},
}
