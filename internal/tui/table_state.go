package tui

import (
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/buoycli/internal/types"
)

// TableState manages row selection and filtering with thread safety
type TableState struct {
	mu sync.RWMutex

	// Row lists
	rows []types.Row // Unfiltered rows as parsed from the feed
	view []int       // Indices into rows after filtering

	// Navigation
	selected int // Current position in view (-1 = nothing selected)
	offset   int // Scroll offset for the row window

	// Filtering
	query string // Active fuzzy filter query
}

// NewTableState creates a table state over the given rows. Nothing is
// selected until the first navigation.
func NewTableState(rows []types.Row) *TableState {
	return &TableState{
		rows:     rows,
		view:     identityView(len(rows)),
		selected: -1,
	}
}

func identityView(n int) []int {
	view := make([]int, n)
	for i := range view {
		view[i] = i
	}
	return view
}

// Len returns the number of rows in the current view
func (s *TableState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.view)
}

// TotalLen returns the number of rows before filtering
func (s *TableState) TotalLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// SelectedIndex returns the current position in the view (-1 = none)
func (s *TableState) SelectedIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SelectedRow returns the currently selected row (or false if none)
func (s *TableState) SelectedRow() (types.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected < 0 || s.selected >= len(s.view) {
		return nil, false
	}
	return s.rows[s.view[s.selected]], true
}

// ScrollOffset returns the current scroll offset
func (s *TableState) ScrollOffset() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offset
}

// Window returns the rows visible in one page along with the view index
// of the first one.
func (s *TableState) Window(pageSize int) ([]types.Row, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pageSize < 1 {
		pageSize = 1
	}

	end := s.offset + pageSize
	if end > len(s.view) {
		end = len(s.view)
	}
	if s.offset >= end {
		return nil, s.offset
	}

	rows := make([]types.Row, 0, end-s.offset)
	for _, idx := range s.view[s.offset:end] {
		rows = append(rows, s.rows[idx])
	}
	return rows, s.offset
}

// SetRows replaces the backing rows, reapplies any active filter, and
// clears the selection.
func (s *TableState) SetRows(rows []types.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
	s.applyFilterLocked()
}

// Navigate moves the selection by delta positions (supports wrapping).
// The first move on an unselected table lands on the first row; a table
// with no rows ignores navigation entirely.
func (s *TableState) Navigate(delta int, pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.view) == 0 {
		return
	}

	if s.selected < 0 {
		s.selected = 0
		s.adjustScrollOffsetLocked(pageSize)
		return
	}

	s.selected += delta

	// Wrap around (circular navigation)
	if s.selected < 0 {
		s.selected = len(s.view) - 1
	} else if s.selected >= len(s.view) {
		s.selected = 0
	}

	s.adjustScrollOffsetLocked(pageSize)
}

// adjustScrollOffsetLocked adjusts scroll offset (must be called with lock held)
func (s *TableState) adjustScrollOffsetLocked(pageSize int) {
	if s.selected < s.offset {
		s.offset = s.selected
	} else if s.selected >= s.offset+pageSize {
		s.offset = s.selected - pageSize + 1
	}
}

// GoToTop selects the first row
func (s *TableState) GoToTop(pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.view) == 0 {
		return
	}
	s.selected = 0
	s.adjustScrollOffsetLocked(pageSize)
}

// GoToBottom selects the last row
func (s *TableState) GoToBottom(pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.view) == 0 {
		return
	}
	s.selected = len(s.view) - 1
	s.adjustScrollOffsetLocked(pageSize)
}

// SetFilter reranks the view against a fuzzy query. An empty query
// restores the full view.
func (s *TableState) SetFilter(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.applyFilterLocked()
}

// ClearFilter drops the filter and restores the full view
func (s *TableState) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.applyFilterLocked()
}

// Filter returns the active filter query
func (s *TableState) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// applyFilterLocked rebuilds the view for the current query (must be
// called with lock held). The selection resets because view positions
// shift under it.
func (s *TableState) applyFilterLocked() {
	if s.query == "" {
		s.view = identityView(len(s.rows))
	} else {
		haystack := make([]string, len(s.rows))
		for i, row := range s.rows {
			haystack[i] = strings.Join(row, " ")
		}

		matches := fuzzy.Find(s.query, haystack)
		view := make([]int, len(matches))
		for i, match := range matches {
			view[i] = match.Index
		}
		s.view = view
	}

	s.selected = -1
	s.offset = 0
}
