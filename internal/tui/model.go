package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/buoycli/internal/columns"
	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/feed"
	"github.com/studiowebux/buoycli/internal/history"
	"github.com/studiowebux/buoycli/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeTable Mode = iota
	ModeFilter
	ModeRaw
	ModeHelp
)

// Model represents the TUI state
type Model struct {
	// Core state
	settings  config.Settings
	snapshots *history.Manager // nil when snapshot recording is off
	mode      Mode
	version   string

	// Feed data
	feed      feed.Definition
	layout    columns.Layout
	table     *TableState
	body      string // Raw feed body backing the raw view
	fetchedAt time.Time

	// Filter input
	filterInput string // Query being typed in filter mode

	// Raw view
	rawView viewport.Model

	// Fetch cancellation
	fetchCancelFunc context.CancelFunc

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
	loading   bool

	// Fatal error carried out of the event loop. Run returns it after
	// the program exits so main can report it and set the exit code.
	fatalErr error
}

// Init initializes the TUI. It schedules nothing: the interface only
// redraws in response to input or to an action the user started.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup cancels any in-flight fetch and closes the snapshot store
func (m *Model) Cleanup() {
	if m.fetchCancelFunc != nil {
		m.fetchCancelFunc()
		m.fetchCancelFunc = nil
	}
	if m.snapshots != nil {
		if err := m.snapshots.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing snapshot database: %v\n", err)
		}
		m.snapshots = nil
	}
}

// FatalErr returns the error that ended the event loop, if any
func (m *Model) FatalErr() error {
	return m.fatalErr
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case feedLoadedMsg:
		m.loading = false
		m.fetchCancelFunc = nil
		if msg.def.Name != m.feed.Name {
			// The feeds have different columns; a carried-over filter
			// would rank against the wrong text.
			m.table.ClearFilter()
			m.filterInput = ""
		}
		m.feed = msg.def
		m.layout = msg.layout
		m.body = msg.body
		m.fetchedAt = msg.fetchedAt
		m.table.SetRows(msg.rows)
		m.errorMsg = ""
		cmd = m.setStatusMessage(fmt.Sprintf("Loaded %d rows from the %s feed", len(msg.rows), msg.def.Name))

	case feedFailedMsg:
		// A failed fetch ends the session; there is no retry.
		m.loading = false
		m.fetchCancelFunc = nil
		m.fatalErr = msg.err
		m.Cleanup()
		cmd = tea.Quit

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeRaw:
		return m.renderRaw()
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// pageSize is the number of data rows visible in the table window
func (m *Model) pageSize() int {
	if m.height == 0 {
		return DefaultPageSize
	}
	size := m.height - TableChromeLines
	if size < 1 {
		size = 1
	}
	return size
}

// updateViewport resizes the raw viewport to the current window.
// MUST match the frame calculations in renderRaw!
func (m *Model) updateViewport() {
	m.rawView.Width = m.width - 4
	if m.rawView.Width < 1 {
		m.rawView.Width = 1
	}
	m.rawView.Height = m.height - RawViewChromeLines
	if m.rawView.Height < 1 {
		m.rawView.Height = 1
	}
}

// Custom message types
type feedLoadedMsg struct {
	def       feed.Definition
	layout    columns.Layout
	body      string
	rows      []types.Row
	fetchedAt time.Time
}

type feedFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

// Helper methods for setting messages with optional timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	// Truncate for footer display
	if len(msg) > StatusTruncateAt {
		msg = msg[:StatusTruncateAt-3] + "..."
	}
	m.statusMsg = msg

	if timeout := m.settings.MessageTimeout(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	}
	return nil
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	// Truncate for footer display
	if len(msg) > StatusTruncateAt {
		msg = msg[:StatusTruncateAt-3] + "..."
	}
	m.errorMsg = msg

	if timeout := m.settings.MessageTimeout(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})
	}
	return nil
}
