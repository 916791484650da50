package main

import (
	"fmt"

	"duelist/backend"

	"github.com/spf13/cobra"
)

// statsOutput is the --json/--yaml shape of 'stats'
type statsOutput struct {
	Database backend.DatabaseStats `json:"database" yaml:"database"`
	Lists    backend.ListCounts    `json:"lists" yaml:"lists"`
}

// newStatsCmd creates the 'stats' command
func newStatsCmd() *cobra.Command {
	var jsonOutput, yamlOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database and list statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := selectOutput(jsonOutput, yamlOutput)
			if err != nil {
				return err
			}

			stats, err := application.Store().Stats()
			if err != nil {
				return fmt.Errorf("failed to read database stats: %w", err)
			}
			counts, err := application.Counts()
			if err != nil {
				return fmt.Errorf("failed to count items: %w", err)
			}

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, statsOutput{Database: stats, Lists: counts})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, stats.String())
			for _, l := range backend.Lists() {
				fmt.Fprintf(out, "%-6s %d\n", l.Title()+":", counts.Get(l))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "output as YAML")

	return cmd
}
