package tui

// UI Layout Constants
// These constants define spacing and dimensions for the TUI layout

const (
	// Table Layout
	// The table view stacks: border (2) + title (1) + blank (1) +
	// header (1) + rows + blank (1) + footer (1) + status bar (1)
	TableChromeLines = 8 // m.height - 8 rows fit in the table window

	// DefaultPageSize is used before the first WindowSizeMsg arrives
	DefaultPageSize = 20

	// Raw View Layout
	// The raw view stacks: border (2) + heading (1) + blank (1) + viewport + footer (1)
	RawViewChromeLines = 5 // m.height - 5 lines fit in the raw viewport

	// Message Display
	StatusTruncateAt = 100 // Footer messages longer than this are cut to one line

	// Wheel Scrolling
	WheelScrollLines = 3 // Lines moved per wheel notch in the raw view
)
