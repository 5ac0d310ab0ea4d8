/*
Package tui implements the terminal user interface for buoycli.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state and message handling, defines the Model struct
  - keys.go: Keyboard and mouse input routing
  - render.go: View rendering logic for the table, raw, and help views
  - actions.go: Side effects (feed fetches, clipboard, snapshot writes)
  - table_state.go: Thread-safe row selection and filtering

# State Management

Row data lives in TableState, which guards its rows, the filtered view,
the selection cursor, and the scroll offset behind a sync.RWMutex.
Selection is circular: advancing past the last row wraps to the first,
and retreating past the first wraps to the last. A table with nothing
selected yet selects its first row on the first move in either
direction.

# Modes

The application uses a small mode-based system:
  - ModeTable: The main feed table (default)
  - ModeFilter: Typing a fuzzy filter query into the footer
  - ModeRaw: Scrolling the raw feed body in a viewport
  - ModeHelp: The key reference

# Threading Model

The TUI runs in a single goroutine (Bubble Tea's event loop). Init
returns no command, so nothing runs at rest: every redraw is a response
to a key press, a wheel event, a resize, or the completion of an action
the user started. Feed fetches run in their own goroutine and deliver a
feedLoadedMsg or feedFailedMsg back to the loop. A failed fetch ends
the session; there is no retry.

# Example Usage

	err := tui.Run(tui.RunOptions{
		FeedName: types.FeedStations,
		Snapshot: false,
		Version:  version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
*/
package tui
