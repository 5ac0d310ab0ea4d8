package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/studiowebux/buoycli/internal/types"
)

// stationElement mirrors one <station> element. Pointer fields distinguish
// an absent attribute from a present-but-empty one.
type stationElement struct {
	ID           *string `xml:"id,attr"`
	Name         *string `xml:"name,attr"`
	Lat          *string `xml:"lat,attr"`
	Lon          *string `xml:"lon,attr"`
	Program      *string `xml:"pgm,attr"`
	Kind         *string `xml:"type,attr"`
	Met          *string `xml:"met,attr"`
	Currents     *string `xml:"currents,attr"`
	WaterQuality *string `xml:"waterquality,attr"`
	Dart         *string `xml:"dart,attr"`
}

// ParseStations converts the active-stations XML body into station records,
// collecting every element named "station" regardless of nesting depth.
// lat and lon are required and their absence fails the whole parse; the
// descriptive attributes fall back to a placeholder and the capability
// flags default to "n".
func ParseStations(body string) ([]types.Station, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))

	var stations []types.Station
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse stations XML: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "station" {
			continue
		}

		var el stationElement
		if err := decoder.DecodeElement(&el, &start); err != nil {
			return nil, fmt.Errorf("failed to decode station element: %w", err)
		}

		station, err := el.toStation()
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	return stations, nil
}

func (el stationElement) toStation() (types.Station, error) {
	id := "unknown"
	if el.ID != nil {
		id = *el.ID
	}

	if el.Lat == nil {
		return types.Station{}, fmt.Errorf("station %s: missing required attribute lat", id)
	}
	if el.Lon == nil {
		return types.Station{}, fmt.Errorf("station %s: missing required attribute lon", id)
	}

	return types.Station{
		ID:           orPlaceholder(el.ID, "id"),
		Name:         orPlaceholder(el.Name, "name"),
		Lat:          *el.Lat,
		Lon:          *el.Lon,
		Program:      orPlaceholder(el.Program, "pgm"),
		Kind:         orPlaceholder(el.Kind, "kind"),
		Met:          orFlagDefault(el.Met),
		Currents:     orFlagDefault(el.Currents),
		WaterQuality: orFlagDefault(el.WaterQuality),
		Dart:         orFlagDefault(el.Dart),
	}, nil
}

func orPlaceholder(v *string, what string) string {
	if v == nil {
		return fmt.Sprintf("whew, no %s? how'd that happen", what)
	}
	return *v
}

// orFlagDefault treats an absent capability flag as "n", matching the
// feed's own convention for stations without that sensor.
func orFlagDefault(v *string) string {
	if v == nil {
		return "n"
	}
	return *v
}
