package parser

import (
	"strings"
	"testing"
)

const fullStation = `<stations created="2024-01-15T10:50:00UTC" count="1">
  <station id="41001" name="EAST HATTERAS - 150 NM East of Cape Hatteras" lat="34.714" lon="-72.733" pgm="IOOS Partners" type="buoy" met="y" currents="n" waterquality="n" dart="y"/>
</stations>`

func TestParseStations(t *testing.T) {
	stations, err := ParseStations(fullStation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stations) != 1 {
		t.Fatalf("parsed %d stations, want 1", len(stations))
	}

	s := stations[0]
	if s.ID != "41001" {
		t.Errorf("id = %q, want %q", s.ID, "41001")
	}
	if s.Lat != "34.714" || s.Lon != "-72.733" {
		t.Errorf("position = (%q, %q), want (34.714, -72.733)", s.Lat, s.Lon)
	}
	if s.Kind != "buoy" {
		t.Errorf("kind = %q, want %q", s.Kind, "buoy")
	}
	if s.Dart != "y" {
		t.Errorf("dart = %q, want %q", s.Dart, "y")
	}
}

func TestParseStations_MissingRequiredAttribute(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string // substring expected in the error
	}{
		{
			name: "missing lat",
			body: `<stations><station id="41001" name="X" lon="-72.733" pgm="P" type="buoy"/></stations>`,
			want: "lat",
		},
		{
			name: "missing lon",
			body: `<stations><station id="41001" name="X" lat="34.714" pgm="P" type="buoy"/></stations>`,
			want: "lon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStations(tt.body)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name the missing attribute %q", err, tt.want)
			}
		})
	}
}

func TestParseStations_OptionalAttributeDefaults(t *testing.T) {
	body := `<stations><station id="41001" lat="34.714" lon="-72.733"/></stations>`

	stations, err := ParseStations(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := stations[0]

	if s.Met != "n" {
		t.Errorf("met = %q, want %q", s.Met, "n")
	}
	if s.Currents != "n" {
		t.Errorf("currents = %q, want %q", s.Currents, "n")
	}
	if s.WaterQuality != "n" {
		t.Errorf("waterquality = %q, want %q", s.WaterQuality, "n")
	}
	if s.Dart != "n" {
		t.Errorf("dart = %q, want %q", s.Dart, "n")
	}

	if want := "whew, no name? how'd that happen"; s.Name != want {
		t.Errorf("name = %q, want %q", s.Name, want)
	}
	if want := "whew, no pgm? how'd that happen"; s.Program != want {
		t.Errorf("program = %q, want %q", s.Program, want)
	}
	if want := "whew, no kind? how'd that happen"; s.Kind != want {
		t.Errorf("kind = %q, want %q", s.Kind, want)
	}
}

func TestParseStations_RowOrder(t *testing.T) {
	stations, err := ParseStations(fullStation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := stations[0].Row()
	if len(row) != 10 {
		t.Fatalf("row has %d fields, want 10", len(row))
	}

	want := []string{
		"41001",
		"EAST HATTERAS - 150 NM East of Cape Hatteras",
		"34.714",
		"-72.733",
		"IOOS Partners",
		"buoy",
		"y",
		"n",
		"n",
		"y",
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestParseStations_MalformedXML(t *testing.T) {
	if _, err := ParseStations(`<stations><station id="41001" lat="1" lon="2"`); err == nil {
		t.Fatal("expected an error for malformed XML, got nil")
	}
}

func TestParseStations_NoStationElements(t *testing.T) {
	stations, err := ParseStations(`<stations created="2024-01-15"></stations>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stations) != 0 {
		t.Errorf("parsed %d stations, want 0", len(stations))
	}
}

func TestParseStations_NestedDepth(t *testing.T) {
	body := `<root><group><station id="A" lat="1" lon="2"/></group><station id="B" lat="3" lon="4"/></root>`

	stations, err := ParseStations(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("parsed %d stations, want 2", len(stations))
	}
	if stations[0].ID != "A" || stations[1].ID != "B" {
		t.Errorf("ids = %q, %q; want A, B", stations[0].ID, stations[1].ID)
	}
}

func TestParseStations_EmptyAttributeIsPresent(t *testing.T) {
	// An explicitly empty lat is present, not missing; the parse succeeds
	// and the empty value flows through.
	body := `<stations><station id="41001" lat="" lon="-72.733"/></stations>`

	stations, err := ParseStations(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stations[0].Lat != "" {
		t.Errorf("lat = %q, want empty string", stations[0].Lat)
	}
}
