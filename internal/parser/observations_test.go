package parser

import (
	"reflect"
	"testing"

	"github.com/studiowebux/buoycli/internal/types"
)

func TestParseObservations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []types.Row
	}{
		{
			name: "comment lines excluded",
			body: "# header\n1 2 3\n4 5 6",
			want: []types.Row{{"1", "2", "3"}, {"4", "5", "6"}},
		},
		{
			name: "comments only",
			body: "#STN LAT LON\n#text deg deg",
			want: []types.Row{},
		},
		{
			name: "empty body",
			body: "",
			want: []types.Row{},
		},
		{
			name: "blank lines produce no rows",
			body: "1 2 3\n\n\n4 5 6\n",
			want: []types.Row{{"1", "2", "3"}, {"4", "5", "6"}},
		},
		{
			name: "runs of whitespace collapse",
			body: "41001   34.714   -72.733",
			want: []types.Row{{"41001", "34.714", "-72.733"}},
		},
		{
			name: "tabs tokenize like spaces",
			body: "41001\t34.714\t-72.733",
			want: []types.Row{{"41001", "34.714", "-72.733"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseObservations(tt.body)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseObservations(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestParseObservations_FullRecord(t *testing.T) {
	body := "#STN     LAT      LON  YYYY MM DD hh mm WDIR WSPD   GST  WVHT   DPD   APD MWD   PRES  PTDY  ATMP  WTMP  DEWP  VIS   TIDE\n" +
		"#text    deg      deg   yr mo dy hr mn degT  m/s   m/s     m   sec   sec deg    hPa   hPa  degC  degC  degC  nmi     ft\n" +
		"41001  34.714  -72.733 2024 01 15 10 50  210  8.0  10.0   2.1   8.0   5.9 195 1022.1  -1.2  18.5  22.1  14.2   MM     MM"

	rows := ParseObservations(body)
	if len(rows) != 1 {
		t.Fatalf("parsed %d rows, want 1", len(rows))
	}
	if len(rows[0]) != 22 {
		t.Fatalf("row has %d fields, want 22", len(rows[0]))
	}
	if rows[0][0] != "41001" {
		t.Errorf("first field = %q, want %q", rows[0][0], "41001")
	}
	if rows[0][21] != "MM" {
		t.Errorf("last field = %q, want %q", rows[0][21], "MM")
	}
}
