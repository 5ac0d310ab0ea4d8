package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	switch msg.String() {
	case "ctrl+c":
		m.Cleanup()
		return tea.Quit
	}

	// Mode-specific handling
	switch m.mode {
	case ModeFilter:
		return m.handleFilterKeys(msg)
	case ModeRaw:
		return m.handleRawKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return m.handleTableKeys(msg)
}

// handleTableKeys handles keyboard input for the main table.
// Keys without a binding fall through and change nothing.
func (m *Model) handleTableKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.Cleanup()
		return tea.Quit

	case "down", "j":
		m.table.Navigate(1, m.pageSize())

	case "up", "k":
		m.table.Navigate(-1, m.pageSize())

	case "pgdown", "ctrl+d":
		m.table.Navigate(m.pageSize(), m.pageSize())

	case "pgup", "ctrl+u":
		m.table.Navigate(-m.pageSize(), m.pageSize())

	case "g", "home":
		m.table.GoToTop(m.pageSize())

	case "G", "end":
		m.table.GoToBottom(m.pageSize())

	case "r":
		return m.refreshFeed(m.feed, m.layout)

	case "t", "tab":
		return m.switchFeed()

	case "v":
		m.openRawView()

	case "/":
		m.mode = ModeFilter
		m.filterInput = m.table.Filter()

	case "esc":
		if m.table.Filter() != "" {
			m.table.ClearFilter()
			m.filterInput = ""
			return m.setStatusMessage("Filter cleared")
		}

	case "y":
		return m.copySelectedRow()

	case "?":
		m.mode = ModeHelp
	}

	return nil
}

// handleFilterKeys handles keyboard input while a filter query is being
// typed. The view reranks on every edit.
func (m *Model) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = ModeTable
		m.filterInput = ""
		m.table.ClearFilter()
		return nil

	case "enter":
		m.mode = ModeTable
		return nil
	}

	// Handle common text input operations
	if modified, shouldContinue := handleTextInput(&m.filterInput, msg); shouldContinue {
		if modified {
			m.table.SetFilter(m.filterInput)
		}
		return nil
	}

	// Only append single printable characters
	if len(msg.String()) == 1 {
		m.filterInput += msg.String()
		m.table.SetFilter(m.filterInput)
	}

	return nil
}

// handleRawKeys handles keyboard input in the raw feed view
func (m *Model) handleRawKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "v":
		m.mode = ModeTable

	case "down", "j":
		m.rawView.LineDown(1)

	case "up", "k":
		m.rawView.LineUp(1)

	case "pgdown":
		m.rawView.ViewDown()

	case "pgup":
		m.rawView.ViewUp()

	case "ctrl+d":
		m.rawView.HalfViewDown()

	case "ctrl+u":
		m.rawView.HalfViewUp()

	case "g", "home":
		m.rawView.GotoTop()

	case "G", "end":
		m.rawView.GotoBottom()

	case "y":
		return m.copyRawBody()
	}

	return nil
}

// handleHelpKeys handles keyboard input in the help view
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "?", "enter":
		m.mode = ModeTable
	}
	return nil
}

// handleMouse maps wheel events onto the same navigation as the arrow
// keys. Everything else is consumed so the terminal buffer stays put.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		switch m.mode {
		case ModeTable:
			m.table.Navigate(1, m.pageSize())
		case ModeRaw:
			m.rawView.LineDown(WheelScrollLines)
		}

	case tea.MouseButtonWheelUp:
		switch m.mode {
		case ModeTable:
			m.table.Navigate(-1, m.pageSize())
		case ModeRaw:
			m.rawView.LineUp(WheelScrollLines)
		}
	}

	return nil
}

// handleTextInput handles common text input operations (paste, clear, backspace)
// Returns: modified (bool), shouldContinue (bool)
func handleTextInput(input *string, msg tea.KeyMsg) (modified bool, shouldContinue bool) {
	switch msg.String() {
	case "ctrl+v", "shift+insert", "super+v":
		// Paste from clipboard (Ctrl+V, Shift+Insert, or Cmd+V on macOS)
		if text, err := clipboard.ReadAll(); err == nil {
			*input += text
			return true, true
		}
		// If clipboard read fails, don't block - just return
		return false, true
	case "ctrl+k":
		// Clear input
		if *input != "" {
			*input = ""
			return true, true
		}
		return false, true
	case "backspace":
		// Delete last character
		if len(*input) > 0 {
			*input = (*input)[:len(*input)-1]
			return true, true
		}
		return false, true
	}
	return false, false
}
