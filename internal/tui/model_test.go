package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/buoycli/internal/types"
)

func TestNew_InitializesStateCorrectly(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	if m.table == nil {
		t.Fatal("table state should be initialized")
	}

	AssertModelField(t, "mode", m.mode, ModeTable)
	AssertModelField(t, "feed name", m.feed.Name, types.FeedStations)
	AssertModelField(t, "row count", m.table.Len(), 3)
	AssertModelField(t, "version", m.version, "test-version")
	AssertModelField(t, "loading", m.loading, false)
	AssertNoError(t, m.FatalErr())
}

func TestModel_InitSchedulesNothing(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	// The event loop is input-driven: nothing may run at rest.
	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not schedule any command")
	}
}

func TestModel_ViewBeforeFirstResize(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	AssertModelField(t, "placeholder view", m.View(), "Initializing...")
}

func TestModel_WindowSizeSetsPageSize(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	AssertModelField(t, "page size before resize", m.pageSize(), DefaultPageSize)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 28})

	AssertModelField(t, "width", m.width, 120)
	AssertModelField(t, "height", m.height, 28)
	AssertModelField(t, "page size", m.pageSize(), 28-TableChromeLines)
}

func TestModel_FeedLoadedReplacesRows(t *testing.T) {
	m := CreateTestModel(t, testStationRows())
	m.loading = true

	loaded := feedLoadedMsg{
		def:       m.feed,
		layout:    m.layout,
		body:      "<stations></stations>",
		rows:      StationRows(5),
		fetchedAt: time.Now(),
	}
	m.Update(loaded)

	AssertModelField(t, "loading cleared", m.loading, false)
	AssertModelField(t, "row count", m.table.Len(), 5)
	AssertModelField(t, "body", m.body, "<stations></stations>")
	if !strings.Contains(m.statusMsg, "5 rows") {
		t.Errorf("statusMsg = %q, want row count mention", m.statusMsg)
	}
}

func TestModel_FeedLoadedForOtherFeedClearsFilter(t *testing.T) {
	m := CreateTestModel(t, testStationRows())
	m.table.SetFilter("alpha")
	AssertModelField(t, "filtered", m.table.Len(), 1)

	obs := m.feed.Other(m.settings)
	m.Update(feedLoadedMsg{
		def:       obs,
		layout:    m.layout,
		body:      "# header\n1 2 3\n",
		rows:      []types.Row{{"1", "2", "3"}},
		fetchedAt: time.Now(),
	})

	AssertModelField(t, "feed switched", m.feed.Name, types.FeedObservations)
	AssertModelField(t, "filter dropped", m.table.Filter(), "")
	AssertModelField(t, "row count", m.table.Len(), 1)
}

func TestModel_FeedFailedQuitsWithError(t *testing.T) {
	m := CreateTestModel(t, testStationRows())
	m.loading = true

	boom := errors.New("stations feed: unexpected status code: 503")
	_, cmd := m.Update(feedFailedMsg{err: boom})

	AssertError(t, m.FatalErr())
	AssertModelField(t, "loading cleared", m.loading, false)

	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected the command to quit the program")
	}
}

func TestModel_StatusMessageTruncation(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	m.setStatusMessage(strings.Repeat("x", StatusTruncateAt+50))

	if len(m.statusMsg) != StatusTruncateAt {
		t.Errorf("statusMsg length = %d, want %d", len(m.statusMsg), StatusTruncateAt)
	}
	if !strings.HasSuffix(m.statusMsg, "...") {
		t.Errorf("statusMsg = %q, want ... suffix", m.statusMsg)
	}
}

func TestModel_StatusMessageTimeout(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	// Default settings keep messages until replaced
	if cmd := m.setStatusMessage("saved"); cmd != nil {
		t.Error("Expected no auto-clear command without a configured timeout")
	}

	// With a timeout, a one-shot clear is scheduled
	m.settings.MessageTimeoutSeconds = 2
	if cmd := m.setStatusMessage("saved"); cmd == nil {
		t.Error("Expected an auto-clear command with a configured timeout")
	}

	// The clear message empties the footer
	m.Update(clearStatusMsg{})
	AssertModelField(t, "statusMsg after clear", m.statusMsg, "")
}

func TestModel_ErrorMessageClear(t *testing.T) {
	m := CreateTestModel(t, testStationRows())

	m.setErrorMessage("Failed to copy to clipboard: no display")
	if m.errorMsg == "" {
		t.Fatal("Expected errorMsg to be set")
	}

	m.Update(clearErrorMsg{})
	AssertModelField(t, "errorMsg after clear", m.errorMsg, "")
}

func TestModel_RenderedTableMarksSelection(t *testing.T) {
	m := CreateTestModel(t, testStationRows())
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})

	// Before any navigation the footer shows no position
	view := m.View()
	if !strings.Contains(view, "[-/3]") {
		t.Errorf("Expected [-/3] footer before navigation, got:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	view = m.View()
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("Expected [1/3] footer after first move, got:\n%s", view)
	}
	if !strings.Contains(view, "Active Stations") {
		t.Error("Expected the feed title in the view")
	}
}
