package main

import (
	"fmt"
	"strings"

	"duelist/backend"
	"duelist/internal/cli"
	"duelist/internal/formatters"
	"duelist/internal/operations"
	"duelist/internal/utils"

	"github.com/spf13/cobra"
)

// newAddCmd creates the 'add' command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item, reading its due date from the text",
		Long: `Add an item. Words naming a date or time set the due date and the
remaining words become the title.

Dates:  today, tomorrow, monday..sunday (mon..sun), jan 5, january 5 2027,
        12/25, 12/25/27
Times:  7pm, 9a, 11:59, 11:59pm (bare hours 1-11 are read as pm)

A date without a time is due at default_time (11:59pm unless configured);
a time without a date is due today.

Examples:
  duelist add buy groceries tue 7pm
  duelist add call mom tomorrow
  duelist add dentist dec 3 9:30am
  duelist add read a book                # no due date`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, _, err := operations.AddFromInput(application.Store(), application.Parser(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q %s\n", item.Title, dueSuffix(item))
			return nil
		},
	}
}

// newDoneCmd creates the 'done' command
func newDoneCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "done <ref>",
		Short: "Mark an item as done",
		Long: `Mark an item as done. <ref> is the number shown by 'duelist list', an ID
prefix (8+ characters) or part of the title.

Numbers refer to the list named by --list (default: all).

Examples:
  duelist done 1
  duelist done groceries
  duelist done 2 --list today`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeItems(backend.ListAll),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompleted(cmd, listName, args[0], true)
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", string(backend.ListAll), "list the reference is resolved in")
	return cmd
}

// newUndoCmd creates the 'undo' command
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <ref>",
		Short: "Mark a done item as not done",
		Long: `Reopen a completed item. <ref> is resolved against 'duelist list done'.

Examples:
  duelist undo 1
  duelist undo groceries`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeItems(backend.ListDone),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompleted(cmd, string(backend.ListDone), args[0], false)
		},
	}
}

func setCompleted(cmd *cobra.Command, listName, ref string, completed bool) error {
	item, err := resolveItem(listName, ref)
	if err != nil {
		return err
	}

	updated, err := application.Store().SetCompleted(item.ID, completed)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	verb := "Completed"
	if !completed {
		verb = "Reopened"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", verb, updated.Title)
	return nil
}

// newEditCmd creates the 'edit' command
func newEditCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "edit <ref> <text...>",
		Short: "Replace an item's text and due date",
		Long: `Re-enter an item. The new text is parsed like 'duelist add' and replaces
the title and due date.

Examples:
  duelist edit 1 buy groceries wed 6pm
  duelist edit essay final essay fri`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeItems(backend.ListAll),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := resolveItem(listName, args[0])
			if err != nil {
				return err
			}

			updated, _, err := operations.EditFromInput(application.Store(), application.Parser(), *item, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q %s\n", updated.Title, dueSuffix(updated))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", string(backend.ListAll), "list the reference is resolved in")
	return cmd
}

// newDeleteCmd creates the 'delete' command
func newDeleteCmd() *cobra.Command {
	var listName string
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <ref>",
		Short: "Delete an item",
		Long: `Delete an item permanently. Asks for confirmation unless --force is given.

Examples:
  duelist delete 3
  duelist delete "old thing" --list done --force`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeItems(backend.ListAll),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := resolveItem(listName, args[0])
			if err != nil {
				return err
			}

			if !force {
				question := fmt.Sprintf("Delete %q?", item.Title)
				if !utils.PromptYesNoFrom(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := application.Store().DeleteItem(item.ID); err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", string(backend.ListAll), "list the reference is resolved in")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}

// newClearCmd creates the 'clear' command
func newClearCmd() *cobra.Command {
	var vacuum bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed items",
		Long: `Delete every completed item. With --vacuum the database file is
compacted afterwards.

Examples:
  duelist clear
  duelist clear --vacuum`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := application.Store().ClearCompleted()
			if err != nil {
				return fmt.Errorf("failed to clear completed items: %w", err)
			}
			noun := "items"
			if n == 1 {
				noun = "item"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed %s\n", n, noun)

			if vacuum {
				if err := application.Store().Compact(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Database compacted")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&vacuum, "vacuum", false, "compact the database file afterwards")
	return cmd
}

func resolveItem(listName, ref string) (*backend.Item, error) {
	if err := operations.ValidateReference(ref); err != nil {
		return nil, err
	}
	list, err := application.ResolveList(listName)
	if err != nil {
		return nil, err
	}
	items, err := application.Items(list)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	return operations.SelectItem(items, ref)
}

func dueSuffix(item backend.Item) string {
	if item.Due == nil {
		return "(no due date)"
	}
	return "due " + formatters.FormatDue(*item.Due, application.Now())
}

// completeItems suggests titles from list for item references.
func completeItems(list backend.List) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		load := func() ([]backend.Item, error) {
			if err := setup(cmd, args); err != nil {
				return nil, err
			}
			return application.Items(list)
		}
		return cli.ItemCompletion(load)(cmd, args, toComplete)
	}
}
