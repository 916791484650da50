package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"duelist/internal/formatters"
	"duelist/internal/operations"
	"duelist/internal/parser"

	"github.com/spf13/cobra"
)

// newParseCmd creates the 'parse' command
func newParseCmd() *cobra.Command {
	var jsonOutput, yamlOutput bool
	var defaultTime string

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Show how an input is read without saving it",
		Long: `Parse text the way 'duelist add' does and print the title, the due date
and what it was resolved from. Nothing is stored.

Examples:
  duelist parse buy groceries tue 7pm
  duelist parse "party 12/31 9pm" --json
  duelist parse call mom tomorrow --default-time 9am`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := selectOutput(jsonOutput, yamlOutput)
			if err != nil {
				return err
			}

			p := application.Parser()
			if defaultTime != "" {
				if err := operations.ValidateDefaultTime(defaultTime); err != nil {
					return err
				}
				p = parser.New(
					parser.WithClock(application.Now),
					parser.WithLocation(p.Location()),
					parser.WithDefaultTime(defaultTime),
				)
			}

			res := p.Parse(strings.Join(args, " "))
			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, res)
			}
			printResult(cmd.OutOrStdout(), res, application.Now(), application.Config().GetDateFormat())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "output as YAML")
	cmd.Flags().StringVar(&defaultTime, "default-time", "", "time for dates given without one (overrides default_time)")

	return cmd
}

func printResult(w io.Writer, res parser.Result, now time.Time, layout string) {
	fmt.Fprintf(w, "Input:   %s\n", res.Raw)
	fmt.Fprintf(w, "Title:   %s\n", res.Title)

	due := formatters.DueLabel(res, now)
	if res.Due != nil {
		due += fmt.Sprintf(" (%s, %s)", res.Due.Format(layout), formatters.Relative(*res.Due, now))
	}
	fmt.Fprintf(w, "Due:     %s\n", due)

	if anchor := describeAnchor(res.Anchor); anchor != "" {
		fmt.Fprintf(w, "Anchor:  %s\n", anchor)
	}
	if res.Time != "" {
		fmt.Fprintf(w, "Time:    %s\n", res.Time)
	}
}

func describeAnchor(anchor parser.Anchor) string {
	switch a := anchor.(type) {
	case parser.DayAnchor:
		return a.Day.String()
	case parser.MonthAnchor:
		s := a.Month.String()
		if a.DayOfMonth > 0 {
			s += fmt.Sprintf(" %d", a.DayOfMonth)
		}
		if a.HasYear {
			s += fmt.Sprintf(", %d", a.Year)
		}
		return s
	default:
		return ""
	}
}
