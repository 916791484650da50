package main

import (
	"fmt"

	"duelist/backend"
	"duelist/internal/cli"

	"github.com/spf13/cobra"
)

// listOutput is the --json/--yaml shape of 'list'
type listOutput struct {
	List   backend.List       `json:"list" yaml:"list"`
	Items  []backend.Item     `json:"items" yaml:"items"`
	Counts backend.ListCounts `json:"counts" yaml:"counts"`
}

// newListCmd creates the 'list' command
func newListCmd() *cobra.Command {
	var jsonOutput, yamlOutput, showIDs bool

	cmd := &cobra.Command{
		Use:   "list [all|today|late|done]",
		Short: "Show a list of items",
		Long: `Show the items in one list, soonest due first. Items without a due
date come last.

Lists:
  all    every item not yet done
  today  not done and due today
  late   not done and past due
  done   completed items

Without an argument the default_list from the config is shown.

Examples:
  duelist list                 # Default list
  duelist list late            # Overdue items
  duelist list today --json    # JSON output
  duelist list --ids           # Show item IDs`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.ListCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := selectOutput(jsonOutput, yamlOutput)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			list, err := application.ResolveList(name)
			if err != nil {
				return err
			}

			if showIDs {
				return showListWith(cmd, list, format, func(o *cli.DisplayOptions) { o.ShowIDs = true })
			}
			return showList(cmd, list, format)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "output as YAML")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "show short item IDs")

	return cmd
}

// newTodayCmd creates the 'today' command
func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Glance at what is due today",
		Long: `Print a compact summary of the items due today, with their times.

Examples:
  duelist today`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := application.Items(backend.ListToday)
			if err != nil {
				return fmt.Errorf("failed to load items: %w", err)
			}
			cli.ShowToday(cmd.OutOrStdout(), items, application.Now(), application.DisplayOptions())
			return nil
		},
	}
}

func showList(cmd *cobra.Command, list backend.List, format outputFormat) error {
	return showListWith(cmd, list, format, nil)
}

func showListWith(cmd *cobra.Command, list backend.List, format outputFormat, adjust func(*cli.DisplayOptions)) error {
	items, err := application.Items(list)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	counts, err := application.Counts()
	if err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}

	if format != outputText {
		if items == nil {
			items = []backend.Item{}
		}
		return writeStructured(cmd.OutOrStdout(), format, listOutput{List: list, Items: items, Counts: counts})
	}

	opts := application.DisplayOptions()
	if adjust != nil {
		adjust(&opts)
	}
	cli.ShowItems(cmd.OutOrStdout(), list, items, counts, application.Now(), opts)
	return nil
}
