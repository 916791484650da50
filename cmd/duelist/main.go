package main

import (
	"os"

	"duelist/internal/app"
	"duelist/internal/config"
	"duelist/internal/operations"
	"duelist/internal/utils"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// application is set up before every command runs
var application *app.App

var (
	configPath string
	dbPath     string
	nowFlag    string
	verbose    bool
	noColor    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "duelist",
		Short: "A to-do list that reads due dates from plain text",
		Long: `duelist keeps a list of things that are due. Type a task the way you
would say it and the due date is read from the words:

  duelist add buy groceries tue 7pm
  duelist add pay rent 12/1
  duelist add essay tomorrow            # due tomorrow at 11:59pm

Without a command, duelist shows your default list (or opens the input
prompt when ui: tui is configured).

Examples:
  duelist list today                    # What is due today
  duelist done 2                        # Complete item 2 of 'duelist list'
  duelist parse "dinner fri 8pm"        # See how an input is read
  duelist --now "2026-01-15 09:00" list # Pretend it is another time`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if application.Config().UI == "tui" {
				return runInput(cmd)
			}
			return showList(cmd, application.DefaultList(), outputText)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file or directory (default $XDG_CONFIG_HOME/duelist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "item database path (overrides db_path)")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "pretend the current time is this (RFC 3339 or \"2006-01-02 15:04\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newTodayCmd(),
		newDoneCmd(),
		newUndoCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newClearCmd(),
		newParseCmd(),
		newInputCmd(),
		newStatsCmd(),
	)

	return rootCmd
}

// setup loads the configuration and opens the item database.
func setup(cmd *cobra.Command, args []string) error {
	utils.SetVerboseMode(verbose)

	if application != nil {
		return nil
	}

	config.SetCustomConfigPath(configPath)
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrCreate(path, promptIfTerminal)
	if err != nil {
		return err
	}
	if noColor {
		off := false
		cfg.Color = &off
	}

	opts := app.Options{DBPath: dbPath}
	if nowFlag != "" {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		now, err := operations.ParseNowFlag(nowFlag, loc)
		if err != nil {
			return err
		}
		opts.Now = &now
	}

	application, err = app.NewApp(cfg, opts)
	return err
}

func closeApp() error {
	if application == nil {
		return nil
	}
	err := application.Close()
	application = nil
	return err
}

// promptIfTerminal asks only when someone can answer.
func promptIfTerminal(question string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return utils.PromptYesNo(question)
}

func main() {
	err := newRootCmd().Execute()
	if cerr := closeApp(); cerr != nil {
		utils.Errorf("Failed to close database: %v", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
