package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/buoycli/internal/cli"
	"github.com/studiowebux/buoycli/internal/config"
	"github.com/studiowebux/buoycli/internal/logging"
	"github.com/studiowebux/buoycli/internal/tui"
	"github.com/studiowebux/buoycli/internal/types"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "buoycli",
	Short: "Buoy CLI - NDBC marine telemetry browser",
	Long: `Buoy CLI browses live marine telemetry from the NOAA National Data Buoy
Center in an interactive terminal table.

Run without arguments to browse the active stations feed. Data is fetched
fresh on every run; nothing is stored unless you opt in with --snapshot or
the snapshot command.

Examples:
  buoycli                              # Browse active stations
  buoycli observations                 # Browse latest observations
  buoycli --snapshot                   # Record each fetch while browsing
  buoycli snapshot                     # Record both feeds and exit
  buoycli snapshots --limit 10         # Show recent snapshots
  buoycli export stations -o out.csv   # Write the stations feed to a file
  buoycli --help                       # Show help`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(types.FeedStations)
	},
}

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Browse the active stations feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(types.FeedStations)
	},
}

var observationsCmd = &cobra.Command{
	Use:   "observations",
	Short: "Browse the latest observations feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(types.FeedObservations)
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch both feeds and record one snapshot per feed",
	Long: `Fetch both feeds concurrently, record one snapshot per feed in the
snapshot store, and print a summary line per feed.

Either feed failing fails the run and nothing is stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSnapshot()
	},
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List recorded snapshots and per-feed totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSnapshots()
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <stations|observations>",
	Short: "Fetch a feed and write its rows to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0])
	},
}

// Persistent flags
var (
	flagDebug    bool
	flagSnapshot bool
)

// Flags for snapshots
var (
	flagLimit int
)

// Flags for export
var (
	flagFormat string
	flagOutput string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write an event log to the config directory")
	rootCmd.PersistentFlags().BoolVar(&flagSnapshot, "snapshot", false, "Record each successful TUI fetch to the snapshot store")

	// snapshots flags
	snapshotsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Maximum snapshots to list")

	// export flags
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format (csv/json/yaml)")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default <feed>.<format>)")

	// Add subcommands
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(observationsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(exportCmd)
}

// initialize prepares the config directory and the debug log before any
// command runs
func initialize() (func(), error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	logPath := ""
	if flagDebug {
		logPath = config.LogFile
	}
	return logging.Setup(logPath)
}

// runTUI starts the interactive table on the named feed
func runTUI(feedName string) error {
	cleanup, err := initialize()
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(tui.RunOptions{
		FeedName: feedName,
		Snapshot: flagSnapshot,
		Version:  version,
	})
}

// runSnapshot records one snapshot per feed in headless mode
func runSnapshot() error {
	cleanup, err := initialize()
	if err != nil {
		return err
	}
	defer cleanup()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	return cli.Snapshot(cli.SnapshotOptions{
		Settings: settings,
		DBPath:   config.DatabasePath,
	})
}

// runSnapshots lists what the snapshot store holds
func runSnapshots() error {
	cleanup, err := initialize()
	if err != nil {
		return err
	}
	defer cleanup()

	return cli.ListSnapshots(cli.ListOptions{
		DBPath: config.DatabasePath,
		Limit:  flagLimit,
	})
}

// runExport writes one feed's rows to a file in headless mode
func runExport(feedName string) error {
	cleanup, err := initialize()
	if err != nil {
		return err
	}
	defer cleanup()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	return cli.Export(cli.ExportOptions{
		Settings:   settings,
		FeedName:   feedName,
		Format:     flagFormat,
		OutputPath: flagOutput,
	})
}
