package cli

import (
	"fmt"
	"time"

	"github.com/studiowebux/buoycli/internal/columns"
	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/export"
	"github.com/studiowebux/buoycli/internal/feed"
	"github.com/studiowebux/buoycli/internal/history"
	"github.com/studiowebux/buoycli/internal/types"
	"golang.org/x/sync/errgroup"
)

// SnapshotOptions contains options for the headless snapshot run
type SnapshotOptions struct {
	Settings config.Settings
	DBPath   string
}

type snapshotResult struct {
	def       feed.Definition
	body      string
	rowCount  int
	fetchedAt time.Time
}

// Snapshot fetches both feeds concurrently, records one snapshot per feed,
// and prints a summary line per feed. Either feed failing fails the run;
// nothing is stored in that case.
func Snapshot(opts SnapshotOptions) error {
	feeds := []string{types.FeedObservations, types.FeedStations}
	results := make([]snapshotResult, len(feeds))

	var g errgroup.Group
	for i, name := range feeds {
		def, err := feed.ForName(name, opts.Settings)
		if err != nil {
			return err
		}
		g.Go(func() error {
			body, err := feed.Fetch(def, opts.Settings.Timeout())
			if err != nil {
				return err
			}
			rows, err := def.Parse(body)
			if err != nil {
				return err
			}
			results[i] = snapshotResult{
				def:       def,
				body:      body,
				rowCount:  len(rows),
				fetchedAt: time.Now(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	mgr, err := history.NewManager(opts.DBPath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	for _, r := range results {
		if err := mgr.SaveSnapshot(r.def.Name, r.fetchedAt, r.rowCount, r.body); err != nil {
			return err
		}
		fmt.Printf("%-14s %d rows recorded at %s\n", r.def.Name, r.rowCount, r.fetchedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// ListOptions contains options for listing recorded snapshots
type ListOptions struct {
	DBPath string
	Limit  int
}

// ListSnapshots prints the most recent snapshots and per-feed totals.
func ListSnapshots(opts ListOptions) error {
	mgr, err := history.NewManager(opts.DBPath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	snapshots, err := mgr.ListSnapshots(opts.Limit)
	if err != nil {
		return err
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded. Run 'buoycli snapshot' or pass --snapshot to a TUI run.")
		return nil
	}

	fmt.Printf("%-6s %-14s %-20s %s\n", "ID", "FEED", "FETCHED AT", "ROWS")
	for _, s := range snapshots {
		fmt.Printf("%-6d %-14s %-20s %d\n", s.ID, s.Feed, s.FetchedAt.Format("2006-01-02 15:04:05"), s.RowCount)
	}

	stats, err := mgr.Stats()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, fs := range stats {
		fmt.Printf("%s: %d snapshots, last fetched %s\n", fs.Feed, fs.SnapshotCount, fs.LastFetchedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// ExportOptions contains options for the headless export run
type ExportOptions struct {
	Settings   config.Settings
	FeedName   string
	Format     string
	OutputPath string
}

// Export fetches one feed, parses it, and writes the rows to a file.
func Export(opts ExportOptions) error {
	def, err := feed.ForName(opts.FeedName, opts.Settings)
	if err != nil {
		return err
	}

	layout, err := columns.For(def.Name, opts.Settings.Columns[def.Name])
	if err != nil {
		return err
	}

	body, err := feed.Fetch(def, opts.Settings.Timeout())
	if err != nil {
		return err
	}

	rows, err := def.Parse(body)
	if err != nil {
		return err
	}

	path, err := export.Rows(export.Options{
		Feed:       def.Name,
		OutputPath: opts.OutputPath,
		Format:     opts.Format,
	}, layout.Names(), rows)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), path)
	return nil
}
