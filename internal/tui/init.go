package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/buoycli/internal/columns"
	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/feed"
	"github.com/studiowebux/buoycli/internal/history"
	"github.com/studiowebux/buoycli/internal/types"
)

// Options carries the initial state for a table session. Run assembles
// one after the first fetch; tests build them directly.
type Options struct {
	Feed      feed.Definition
	Layout    columns.Layout
	Rows      []types.Row
	Body      string
	FetchedAt time.Time
	Settings  config.Settings
	Snapshots *history.Manager // nil disables snapshot recording
	Version   string
}

// New creates a new TUI model
func New(opts Options) Model {
	return Model{
		settings:  opts.Settings,
		snapshots: opts.Snapshots,
		mode:      ModeTable,
		version:   opts.Version,
		feed:      opts.Feed,
		layout:    opts.Layout,
		table:     NewTableState(opts.Rows),
		body:      opts.Body,
		fetchedAt: opts.FetchedAt,
		rawView:   viewport.New(80, 20),
	}
}

// RunOptions configures a TUI session started from the command line
type RunOptions struct {
	FeedName string
	Snapshot bool
	Version  string
}

// Run fetches the starting feed and enters the event loop. It blocks
// until the user quits or a fetch fails.
func Run(opts RunOptions) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	def, err := feed.ForName(opts.FeedName, settings)
	if err != nil {
		return err
	}

	layout, err := columns.For(def.Name, settings.Columns[def.Name])
	if err != nil {
		return err
	}

	// The first fetch happens before the terminal switches to the
	// alternate screen, so a startup failure prints like any other CLI
	// error.
	body, err := feed.Fetch(def, settings.Timeout())
	if err != nil {
		return err
	}

	rows, err := def.Parse(body)
	if err != nil {
		return err
	}
	fetchedAt := time.Now()

	var snapshots *history.Manager
	if opts.Snapshot {
		snapshots, err = history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		if err := snapshots.SaveSnapshot(def.Name, fetchedAt, len(rows), body); err != nil {
			snapshots.Close()
			return err
		}
	}

	m := New(Options{
		Feed:      def,
		Layout:    layout,
		Rows:      rows,
		Body:      body,
		FetchedAt: fetchedAt,
		Settings:  settings,
		Snapshots: snapshots,
		Version:   opts.Version,
	})

	// Pass a pointer since Update uses pointer receivers. Mouse capture
	// keeps wheel events in the table instead of the terminal buffer.
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(*Model); ok && fm.FatalErr() != nil {
		return fm.FatalErr()
	}

	return nil
}
