package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"coronet_planner/internal/models"
	"coronet_planner/internal/submission"
	"coronet_planner/internal/validate"
)

type submitted struct {
	Receipt *submission.Receipt `json:"receipt" yaml:"receipt"`
	Plan    *models.MissionPlan `json:"plan" yaml:"plan"`
}

func (a *app) validateCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a mission plan and submit it",
		Long: `Validate a mission plan file (YAML, or JSON for .json files; "-" reads
YAML from stdin). Fields missing from the file take the planning form's
defaults. A valid plan is submitted and printed in normalized form; an
invalid one prints every field error and exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("invalid format: %s (must be yaml or json)", format)
			}

			record, err := readMissionRecord(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			v := validate.New(cat, validate.Options{
				RequireCOMSECKeyDate: a.cfg.Validation.RequireCOMSECKeyDate,
				CheckTotalAircraft:   a.cfg.Validation.CheckTotalAircraft,
			})

			slog.Debug("Validator ready", "rules", v.Rules())

			recorder := submission.NewRecorder(submission.NewLogHandler(nil))
			receipt, err := submission.Submit(cmd.Context(), v, record, recorder)
			var fieldErrs validate.Errors
			if errors.As(err, &fieldErrs) {
				if perr := printErrors(cmd.OutOrStdout(), format, fieldErrs); perr != nil {
					return perr
				}
				return fmt.Errorf("%w: %d field errors", ErrInvalidMission, len(fieldErrs))
			}
			if err != nil {
				return err
			}

			plans := recorder.Plans()
			return write(cmd.OutOrStdout(), format, submitted{Receipt: receipt, Plan: plans[len(plans)-1]})
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")

	return cmd
}

// readMissionRecord decodes path on top of the form defaults. Unknown keys
// are rejected so that a misspelt field is not silently ignored.
func readMissionRecord(path string, stdin io.Reader) (*models.MissionRecord, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open mission file: %w", err)
		}
		defer f.Close()
		r = f
	}

	record := models.NewMissionRecord()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(record); err != nil {
			return nil, fmt.Errorf("failed to decode mission file %s: %w", path, err)
		}
		return record, nil
	}

	if err := models.DecodeYAML(r, record); err != nil {
		return nil, fmt.Errorf("failed to decode mission file %s: %w", path, err)
	}
	return record, nil
}

func printErrors(w io.Writer, format string, errs validate.Errors) error {
	if format == "json" {
		return write(w, format, map[string]validate.Errors{"errors": errs})
	}
	for _, e := range errs {
		if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", e.Path, e.Message, e.Kind); err != nil {
			return err
		}
	}
	return nil
}

func write(w io.Writer, format string, v interface{}) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
