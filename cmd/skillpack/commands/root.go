// Package commands implements the CLI commands for skillpack.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/config"
	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
var version = "0.1.0"

var (
	// verbosity holds the count of -v flags.
	verbosity int

	// quiet holds the value of the -q/--quiet flag.
	quiet bool

	// logFormat holds the value of the --log-format flag.
	logFormat string

	// logFile holds the path to the log file.
	logFile string

	// sourceFlag overrides the configured source root.
	sourceFlag string

	// localFlag selects the project-local installation root.
	localFlag bool
)

// cfg is the loaded configuration; configLoadErr any error from loading it.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "",
		"source directory containing skills (default: from config)")
	rootCmd.PersistentFlags().BoolVarP(&localFlag, "local", "l", false,
		"use the project-local installation root (./.claude/skills)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("skillpack version {{.Version}}\n")

	// Silence errors and usage so main controls error output.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
	if cfg == nil {
		cfg = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillpack",
	Short: "Install curated skills into your assistant configuration",
	Long: `skillpack manages the skills shipped in this repository's skills/
directory. A skill is a directory with a SKILL.md manifest plus optional
scripts, references, and assets.

Skills are installed by copying their directory into an installation root:
the per-user global root (~/.claude/skills) or, with --local, the
project-local root (./.claude/skills).`,
	Example: `  # List the skills available in this repository
  skillpack list

  # Install one skill globally
  skillpack install python-clean-code

  # Install everything into the current project
  skillpack install --all --local

  # Remove a skill
  skillpack uninstall python-clean-code`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "Check your skillpack config.yaml")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
