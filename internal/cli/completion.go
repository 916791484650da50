package cli

import (
	"strings"

	"duelist/backend"

	"github.com/spf13/cobra"
)

// ListCompletion completes the list name argument of 'list'.
func ListCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, name := range backend.ListNames() {
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			completions = append(completions, name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// ItemCompletion completes item references with the titles of the items
// load returns. Errors yield no suggestions.
func ItemCompletion(load func() ([]backend.Item, error)) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		items, err := load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var completions []string
		for _, item := range items {
			if strings.HasPrefix(strings.ToLower(item.Title), strings.ToLower(toComplete)) {
				completions = append(completions, item.Title)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
