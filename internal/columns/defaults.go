package columns

import "github.com/studiowebux/buoycli/internal/types"

// defaultObservations returns the compiled-in layout for the
// latest-observations feed, one column per field in feed order.
func defaultObservations() Layout {
	return Layout{
		{Name: "stn", Width: 5},
		{Name: "lat", Width: 7},
		{Name: "lon", Width: 8},
		{Name: "year", Width: 4},
		{Name: "mo", Width: 2},
		{Name: "day", Width: 3},
		{Name: "hr", Width: 2},
		{Name: "min", Width: 3},
		{Name: "wdir", Width: 4},
		{Name: "wspd", Width: 4},
		{Name: "gst", Width: 4},
		{Name: "wvht", Width: 4},
		{Name: "dpd", Width: 3},
		{Name: "apd", Width: 3},
		{Name: "mwd", Width: 3},
		{Name: "pres", Width: 6},
		{Name: "ptdy", Width: 5},
		{Name: "atmp", Width: 5},
		{Name: "wtmp", Width: 5},
		{Name: "dewp", Width: 5},
		{Name: "vis", Width: 3},
		{Name: "tide", Width: 4},
	}
}

// defaultStations returns the compiled-in layout for the active-stations
// feed, matching the column order of Station.Row.
func defaultStations() Layout {
	return Layout{
		{Name: "station", Width: 7},
		{Name: "name", Width: 34},
		{Name: "lat", Width: 8},
		{Name: "lon", Width: 9},
		{Name: "program", Width: 28},
		{Name: "kind", Width: 14},
		{Name: "met", Width: 3},
		{Name: "currents", Width: 8},
		{Name: "water quality", Width: 13},
		{Name: "dart", Width: 4},
	}
}

// Defaults returns a fresh copy of the compiled-in layout for a feed.
func Defaults(feedName string) (Layout, bool) {
	switch feedName {
	case types.FeedObservations:
		return defaultObservations(), true
	case types.FeedStations:
		return defaultStations(), true
	default:
		return nil, false
	}
}
