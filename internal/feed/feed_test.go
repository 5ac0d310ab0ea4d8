package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/types"
)

func TestForName(t *testing.T) {
	settings := config.DefaultSettings()

	tests := []struct {
		name      string
		feed      string
		wantTitle string
		wantURL   string
		wantErr   bool
	}{
		{
			name:      "observations",
			feed:      types.FeedObservations,
			wantTitle: "Latest Observations",
			wantURL:   config.DefaultObservationsURL,
		},
		{
			name:      "stations",
			feed:      types.FeedStations,
			wantTitle: "Active Stations",
			wantURL:   config.DefaultStationsURL,
		},
		{
			name:    "unknown feed",
			feed:    "tsunami",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ForName(tt.feed, settings)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if def.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", def.Title, tt.wantTitle)
			}
			if def.URL != tt.wantURL {
				t.Errorf("url = %q, want %q", def.URL, tt.wantURL)
			}
		})
	}
}

func TestForName_SettingsOverrideURL(t *testing.T) {
	settings := config.DefaultSettings()
	settings.StationsURL = "http://localhost:9999/stations.xml"

	def, err := ForName(types.FeedStations, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.URL != "http://localhost:9999/stations.xml" {
		t.Errorf("url = %q, want the override", def.URL)
	}
}

func TestOther(t *testing.T) {
	settings := config.DefaultSettings()

	stations, _ := ForName(types.FeedStations, settings)
	if got := stations.Other(settings).Name; got != types.FeedObservations {
		t.Errorf("stations.Other() = %q, want %q", got, types.FeedObservations)
	}

	observations, _ := ForName(types.FeedObservations, settings)
	if got := observations.Other(settings).Name; got != types.FeedStations {
		t.Errorf("observations.Other() = %q, want %q", got, types.FeedStations)
	}
}

func TestFetch(t *testing.T) {
	const body = "#STN   LAT    LON\n41001 34.7 -72.7\n"

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(body))
	}))
	defer server.Close()

	def := Definition{Name: types.FeedObservations, Title: "Latest Observations", URL: server.URL}

	got, err := Fetch(def, 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != body {
		t.Errorf("body = %q, want %q", got, body)
	}
	if !strings.Contains(gotUserAgent, "buoycli") {
		t.Errorf("User-Agent = %q, want it to identify buoycli", gotUserAgent)
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	def := Definition{Name: types.FeedStations, Title: "Active Stations", URL: server.URL}

	if _, err := Fetch(def, 5*time.Second); err == nil {
		t.Fatal("expected an error for a 503 response, got nil")
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	// Grab a port that nothing is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	def := Definition{Name: types.FeedStations, Title: "Active Stations", URL: url}

	if _, err := Fetch(def, 2*time.Second); err == nil {
		t.Fatal("expected an error when the endpoint is unreachable, got nil")
	}
}

func TestParse_Dispatch(t *testing.T) {
	settings := config.DefaultSettings()

	observations, _ := ForName(types.FeedObservations, settings)
	rows, err := observations.Parse("# header\n1 2 3\n4 5 6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("parsed %d rows, want 2", len(rows))
	}

	stations, _ := ForName(types.FeedStations, settings)
	rows, err = stations.Parse(`<stations><station id="41001" name="East Hatteras" lat="34.7" lon="-72.7" pgm="IOOS" type="buoy" met="y"/></stations>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("parsed %d rows, want 1", len(rows))
	}
	if rows[0][0] != "41001" {
		t.Errorf("station id = %q, want %q", rows[0][0], "41001")
	}

	unknown := Definition{Name: "tsunami"}
	if _, err := unknown.Parse("whatever"); err == nil {
		t.Error("expected an error for an unknown feed, got nil")
	}
}
