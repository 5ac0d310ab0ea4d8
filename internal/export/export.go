package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studiowebux/buoycli/internal/types"
	"gopkg.in/yaml.v3"
)

// Options contains options for one export run
type Options struct {
	Feed       string // feed name, used for the default output filename
	OutputPath string // destination file; empty derives "<feed>.<format>"
	Format     string // csv, json, yaml (default: csv)
}

// Rows writes parsed feed rows to a file and returns the path written.
// Short rows are padded to the header width so every record has the same
// shape.
func Rows(opts Options, header []string, rows []types.Row) (string, error) {
	format := opts.Format
	if format == "" {
		format = "csv"
	}

	path := opts.OutputPath
	if path == "" {
		path = opts.Feed + "." + format
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var err error
	switch format {
	case "csv":
		err = writeCSV(path, header, rows)
	case "json":
		err = writeJSON(path, header, rows)
	case "yaml":
		err = writeYAML(path, header, rows)
	default:
		return "", fmt.Errorf("unknown format %q (expected csv, json, or yaml)", format)
	}
	if err != nil {
		return "", err
	}

	return path, nil
}

func writeCSV(path string, header []string, rows []types.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(pad(row, len(header))); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func writeJSON(path string, header []string, rows []types.Row) error {
	data, err := json.MarshalIndent(toRecords(header, rows), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeYAML(path string, header []string, rows []types.Row) error {
	data, err := yaml.Marshal(toRecords(header, rows))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// toRecords pairs each field with its column name for the structured
// formats.
func toRecords(header []string, rows []types.Row) []map[string]string {
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		padded := pad(row, len(header))
		record := make(map[string]string, len(header))
		for j, name := range header {
			record[name] = padded[j]
		}
		records[i] = record
	}
	return records
}

func pad(row types.Row, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
