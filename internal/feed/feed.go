package feed

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/parser"
	"github.com/studiowebux/buoycli/internal/types"
)

// userAgent identifies us to NDBC, which asks automated clients to be
// identifiable.
const userAgent = "buoycli/0.1.0 (+https://github.com/studiowebux/buoycli)"

// Definition identifies one NDBC feed: its CLI name, the table title shown
// in the TUI, and the endpoint it is fetched from.
type Definition struct {
	Name  string
	Title string
	URL   string
}

// ForName resolves a CLI feed name to its definition, with the endpoint
// taken from settings so file overrides apply.
func ForName(name string, settings config.Settings) (Definition, error) {
	switch name {
	case types.FeedObservations:
		return Definition{
			Name:  types.FeedObservations,
			Title: "Latest Observations",
			URL:   settings.ObservationsURL,
		}, nil
	case types.FeedStations:
		return Definition{
			Name:  types.FeedStations,
			Title: "Active Stations",
			URL:   settings.StationsURL,
		}, nil
	}
	return Definition{}, fmt.Errorf("unknown feed %q (expected %q or %q)", name, types.FeedObservations, types.FeedStations)
}

// Other returns the opposite feed, used by the in-table feed switch.
func (d Definition) Other(settings config.Settings) Definition {
	name := types.FeedStations
	if d.Name == types.FeedStations {
		name = types.FeedObservations
	}
	other, _ := ForName(name, settings)
	return other
}

// Parse converts a raw feed body into display rows.
func (d Definition) Parse(body string) ([]types.Row, error) {
	switch d.Name {
	case types.FeedObservations:
		return parser.ParseObservations(body), nil
	case types.FeedStations:
		stations, err := parser.ParseStations(body)
		if err != nil {
			return nil, err
		}
		rows := make([]types.Row, len(stations))
		for i, s := range stations {
			rows[i] = s.Row()
		}
		return rows, nil
	}
	return nil, fmt.Errorf("unknown feed %q", d.Name)
}

// Fetch issues the feed's single blocking GET and returns the full response
// body. There is no retry: any transport error, and any status other than
// 200, is an error for the caller to treat as fatal.
func Fetch(d Definition, timeout time.Duration) (string, error) {
	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequest(http.MethodGet, d.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s feed: %w", d.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s feed: unexpected status code: %d", d.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s feed body: %w", d.Name, err)
	}

	return string(body), nil
}
