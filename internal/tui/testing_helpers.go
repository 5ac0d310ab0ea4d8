package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/studiowebux/buoycli/internal/columns"
	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/feed"
	"github.com/studiowebux/buoycli/internal/types"
)

// CreateTestModel creates a Model over the given rows with default
// settings, the stations layout, and no snapshot store.
func CreateTestModel(t *testing.T, rows []types.Row) *Model {
	t.Helper()

	settings := config.DefaultSettings()
	def := feed.Definition{
		Name:  types.FeedStations,
		Title: "Active Stations",
		URL:   settings.StationsURL,
	}

	layout, err := columns.For(def.Name, nil)
	if err != nil {
		t.Fatalf("Failed to resolve columns: %v", err)
	}

	m := New(Options{
		Feed:      def,
		Layout:    layout,
		Rows:      rows,
		Body:      "",
		FetchedAt: time.Now(),
		Settings:  settings,
		Version:   "test-version",
	})

	return &m
}

// StationRows builds n synthetic station rows for navigation tests
func StationRows(n int) []types.Row {
	rows := make([]types.Row, n)
	for i := range rows {
		rows[i] = types.Row{
			fmt.Sprintf("4%04d", i),
			fmt.Sprintf("Station %d", i),
			"34.714", "-72.733",
			"NDBC Meteorological/Ocean", "buoy",
			"y", "n", "n", "n",
		}
	}
	return rows
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
