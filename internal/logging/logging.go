package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures the process-wide logger. With an empty path logging is
// disabled entirely; otherwise stdlib log output and bubbletea's debug log
// both go to the file. A TUI process cannot log to stdout, the alternate
// screen owns it.
func Setup(path string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "debug")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)

	return func() { f.Close() }, nil
}
