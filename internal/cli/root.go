// Package cli wires the coronet command line: configuration, logging and
// the validate, template and catalog commands.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"coronet_planner/internal/config"
)

// ErrInvalidMission is returned when a mission file fails validation. The
// field errors have already been printed by then.
var ErrInvalidMission = errors.New("mission plan is invalid")

// app carries state shared by the subcommands once the root has loaded it
type app struct {
	cfg *config.Config
}

// NewRootCommand builds the coronet command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	var configPath string

	root := &cobra.Command{
		Use:   "coronet",
		Short: "Validate and normalize Coronet fighter deployment mission plans",
		Long: `coronet checks Coronet mission plans against the planning schema.

A mission plan is a YAML or JSON file with the fields of the planning form:
identification, timing, route and waypoints, the aircraft roster, tanker
support, personnel, communications and contingencies.

Examples:
  # Start a plan with two aircraft and three waypoints
  coronet template --aircraft 2 --waypoints 3 > plan.yaml

  # Validate and submit it
  coronet validate plan.yaml

  # Show the aircraft types the validator accepts
  coronet catalog list --kind aircraft_type`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv(config.ConfigPathEnv, configPath); err != nil {
					return err
				}
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			initLogger(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")

	root.AddCommand(
		a.validateCommand(),
		a.templateCommand(),
		a.catalogCommand(),
	)

	return root
}

// initLogger installs the default slog logger. Logs go to w, which is
// stderr in normal use, so that command output on stdout stays parseable.
func initLogger(cfg *config.Config, w io.Writer) {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}
