package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"coronet_planner/internal/models"
)

func (a *app) templateCommand() *cobra.Command {
	var (
		aircraft  int
		tankers   int
		waypoints int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a blank mission plan with the planning form's defaults",
		Long: `Print a blank mission plan. Rosters are sized with the same add and
remove operations as the planning form, so the aircraft and tanker
rosters never drop below one entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("invalid format: %s (must be yaml or json)", format)
			}

			record := models.NewMissionRecord()
			resize(len(record.Aircraft), aircraft, record.AddAircraft, record.RemoveAircraft)
			resize(len(record.Tankers), tankers, record.AddTanker, record.RemoveTanker)
			resize(len(record.Waypoints), waypoints, record.AddWaypoint, record.RemoveWaypoint)

			return write(cmd.OutOrStdout(), format, record)
		},
	}

	cmd.Flags().IntVar(&aircraft, "aircraft", 1, "Number of aircraft entries")
	cmd.Flags().IntVar(&tankers, "tankers", 1, "Number of tanker entries")
	cmd.Flags().IntVar(&waypoints, "waypoints", 0, "Number of waypoint entries")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")

	return cmd
}

// resize grows or shrinks a roster of size n towards want, stopping early
// when remove refuses
func resize(n, want int, add func(), remove func(int) bool) {
	for ; n < want; n++ {
		add()
	}
	for ; n > want; n-- {
		if !remove(n - 1) {
			return
		}
	}
}
