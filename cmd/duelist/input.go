package main

import (
	"fmt"
	"os"

	"duelist/internal/input"
	"duelist/internal/utils"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newInputCmd creates the 'input' command
func newInputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "input",
		Short: "Add items interactively with live due-date feedback",
		Long: `Open a prompt that shows the due date read from your text as you type.
Enter saves the item and clears the field for the next one; Esc quits.

Examples:
  duelist input`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInput(cmd)
		},
	}
}

func runInput(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		utils.Warnf("stdin is not a terminal; the input prompt may not respond")
	}

	added, err := input.Run(input.Options{
		Store:  application.Store(),
		Parser: application.Parser(),
		Color:  application.Config().ColorEnabled(),
	})
	if err != nil {
		return err
	}

	noun := "items"
	if len(added) == 1 {
		noun = "item"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d %s\n", len(added), noun)
	return nil
}
