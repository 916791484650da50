package app

import (
	"fmt"
	"time"

	"duelist/backend"
	"duelist/internal/cli"
	"duelist/internal/config"
	"duelist/internal/parser"
	"duelist/internal/utils"
)

// Options override parts of the configuration for one run.
type Options struct {
	// DBPath replaces the configured database path when set.
	DBPath string
	// Now pins the clock, for reproducible output and tests.
	Now *time.Time
}

// App holds the application state
type App struct {
	config *config.Config
	store  *backend.SQLiteStore
	parser *parser.Parser
	loc    *time.Location
	now    func() time.Time
}

// NewApp opens the item store and builds a parser for cfg.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, utils.ErrInvalidConfig("timezone", err.Error())
	}

	now := time.Now
	if opts.Now != nil {
		pinned := opts.Now.In(loc)
		now = func() time.Time { return pinned }
		utils.Debugf("Clock pinned to %s", pinned.Format(time.RFC3339))
	}

	dbPath := opts.DBPath
	if dbPath != "" {
		if dbPath, err = utils.ExpandPath(dbPath); err != nil {
			return nil, err
		}
	} else if dbPath, err = cfg.GetDatabasePath(); err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	store, err := backend.NewSQLiteStore(dbPath,
		backend.WithStoreClock(now),
		backend.WithStoreLocation(loc),
	)
	if err != nil {
		return nil, utils.WrapWithSuggestion(
			fmt.Errorf("failed to open item database: %w", err),
			"Check db_path in the config file or pass --db <path>",
		)
	}

	return &App{
		config: cfg,
		store:  store,
		parser: parser.New(
			parser.WithClock(now),
			parser.WithLocation(loc),
			parser.WithDefaultTime(cfg.DefaultTime),
		),
		loc: loc,
		now: now,
	}, nil
}

// Config returns the loaded configuration
func (a *App) Config() *config.Config {
	return a.config
}

// Store returns the item store
func (a *App) Store() *backend.SQLiteStore {
	return a.store
}

// Parser returns the input parser
func (a *App) Parser() *parser.Parser {
	return a.parser
}

// Now returns the current instant in the configured location.
func (a *App) Now() time.Time {
	return a.now().In(a.loc)
}

// Close releases the database
func (a *App) Close() error {
	return a.store.Close()
}

// DefaultList returns the list shown when none is named.
func (a *App) DefaultList() backend.List {
	if l, ok := backend.ParseList(a.config.DefaultList); ok {
		return l
	}
	return backend.ListAll
}

// ResolveList maps a list argument to a List; empty means DefaultList.
func (a *App) ResolveList(name string) (backend.List, error) {
	if name == "" {
		return a.DefaultList(), nil
	}
	l, ok := backend.ParseList(name)
	if !ok {
		return "", utils.ErrUnknownList(name, backend.ListNames())
	}
	return l, nil
}

// Items returns the items in list at the current instant.
func (a *App) Items(list backend.List) ([]backend.Item, error) {
	return a.store.GetItems(backend.ItemFilter{List: list, Now: a.Now()})
}

// Counts returns every list's size at the current instant.
func (a *App) Counts() (backend.ListCounts, error) {
	return a.store.Counts(a.Now())
}

// DisplayOptions returns terminal rendering options from the config.
func (a *App) DisplayOptions() cli.DisplayOptions {
	return cli.DisplayOptions{Color: a.config.ColorEnabled()}
}
