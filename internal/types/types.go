package types

import "time"

// Feed identifiers shared by the CLI, the snapshot store, and column layouts
const (
	FeedObservations = "observations"
	FeedStations     = "stations"
)

// Row is one parsed feed record: ordered string fields, one per displayed
// column. Field count depends on the feed (22 for observations, 10 for
// stations) but is not enforced here; renderers must tolerate short rows.
type Row []string

// Station represents one <station> element from the active-stations feed
type Station struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Lat          string `json:"lat" yaml:"lat"`
	Lon          string `json:"lon" yaml:"lon"`
	Program      string `json:"program" yaml:"program"`
	Kind         string `json:"kind" yaml:"kind"`
	Met          string `json:"met" yaml:"met"`
	Currents     string `json:"currents" yaml:"currents"`
	WaterQuality string `json:"waterQuality" yaml:"waterQuality"`
	Dart         string `json:"dart" yaml:"dart"`
}

// Row returns the station's fields in display column order.
func (s Station) Row() Row {
	return Row{
		s.ID,
		s.Name,
		s.Lat,
		s.Lon,
		s.Program,
		s.Kind,
		s.Met,
		s.Currents,
		s.WaterQuality,
		s.Dart,
	}
}

// Column describes one displayed table column
type Column struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

// Snapshot is one recorded fetch in the snapshot store
type Snapshot struct {
	ID        int64     `json:"id"`
	Feed      string    `json:"feed"`
	FetchedAt time.Time `json:"fetchedAt"`
	RowCount  int       `json:"rowCount"`
	Body      string    `json:"body,omitempty"`
}

// FeedStats aggregates the snapshot store per feed
type FeedStats struct {
	Feed          string    `json:"feed"`
	SnapshotCount int       `json:"snapshotCount"`
	LastFetchedAt time.Time `json:"lastFetchedAt"`
}
