package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/buoycli/internal/columns"
	"github.com/studiowebux/buoycli/internal/feed"
	"github.com/studiowebux/buoycli/internal/types"
)

// refreshFeed fetches a feed off the event loop and delivers the result
// as a message. A refresh while one is already in flight is refused.
func (m *Model) refreshFeed(def feed.Definition, layout columns.Layout) tea.Cmd {
	if m.loading {
		return m.setStatusMessage("Fetch already in progress")
	}

	m.loading = true
	m.statusMsg = fmt.Sprintf("Fetching %s...", def.Name)

	// Cancellable so quitting mid-fetch does not leave the command
	// blocked on the network.
	ctx, cancel := context.WithCancel(context.Background())
	m.fetchCancelFunc = cancel

	timeout := m.settings.Timeout()
	snapshots := m.snapshots

	return func() tea.Msg {
		resultChan := make(chan tea.Msg, 1)

		go func() {
			body, err := feed.Fetch(def, timeout)
			if err != nil {
				resultChan <- feedFailedMsg{err: err}
				return
			}

			rows, err := def.Parse(body)
			if err != nil {
				resultChan <- feedFailedMsg{err: err}
				return
			}

			fetchedAt := time.Now()
			if snapshots != nil {
				if err := snapshots.SaveSnapshot(def.Name, fetchedAt, len(rows), body); err != nil {
					resultChan <- feedFailedMsg{err: err}
					return
				}
			}

			resultChan <- feedLoadedMsg{
				def:       def,
				layout:    layout,
				body:      body,
				rows:      rows,
				fetchedAt: fetchedAt,
			}
		}()

		select {
		case <-ctx.Done():
			return nil
		case res := <-resultChan:
			return res
		}
	}
}

// switchFeed flips to the other feed. Column overrides for the target
// feed are validated here, before any fetch starts, and a bad override
// ends the session the same way a startup one would.
func (m *Model) switchFeed() tea.Cmd {
	other := m.feed.Other(m.settings)

	layout, err := columns.For(other.Name, m.settings.Columns[other.Name])
	if err != nil {
		m.fatalErr = err
		m.Cleanup()
		return tea.Quit
	}

	return m.refreshFeed(other, layout)
}

// copySelectedRow puts the selected row on the system clipboard as
// tab-separated fields.
func (m *Model) copySelectedRow() tea.Cmd {
	row, ok := m.table.SelectedRow()
	if !ok {
		return m.setStatusMessage("No row selected")
	}

	if err := clipboard.WriteAll(strings.Join(row, "\t")); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to copy to clipboard: %v", err))
	}

	return m.setStatusMessage("Row copied to clipboard")
}

// copyRawBody puts the feed body on the clipboard as fetched, without
// the highlighting escapes.
func (m *Model) copyRawBody() tea.Cmd {
	if err := clipboard.WriteAll(m.body); err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to copy to clipboard: %v", err))
	}
	return m.setStatusMessage("Raw feed copied to clipboard")
}

// openRawView shows the feed body as fetched. The stations feed is XML,
// which chroma highlights; the observations feed stays plain text. A
// highlighting failure falls back to the unstyled body.
func (m *Model) openRawView() {
	content := m.body
	if m.feed.Name == types.FeedStations {
		var buf strings.Builder
		if err := quick.Highlight(&buf, m.body, "xml", "terminal256", "monokai"); err == nil {
			content = buf.String()
		}
	}

	m.updateViewport()
	m.rawView.SetContent(content)
	m.rawView.GotoTop()
	m.mode = ModeRaw
}
