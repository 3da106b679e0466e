package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/history"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to trip_history.db")
	last := flag.Int("last", 20, "show N most recent outcomes")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/trip_history.db [--last N] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

type inspectOut struct {
	Outcomes []history.Outcome `json:"outcomes"`
	Snapshot *snapshotOut      `json:"snapshot,omitempty"`
}

type snapshotOut struct {
	CalmVsFast       float64 `json:"calm_vs_fast"`
	ComfortVsEconomy float64 `json:"comfort_vs_economy"`
	MaxWalkMinutes   float64 `json:"max_walk_minutes"`
	MaxTransfers     int     `json:"max_transfers"`
	SampleCount      int     `json:"sample_count"`
}

func run(store *history.Store, last int, jsonOut bool) error {
	outcomes, err := store.Recent(last)
	if err != nil {
		return err
	}
	snap, err := store.Snapshot()
	if err != nil {
		return err
	}

	if jsonOut {
		out := inspectOut{Outcomes: outcomes}
		if snap != nil {
			out.Snapshot = &snapshotOut{
				CalmVsFast:       snap.CalmVsFast,
				ComfortVsEconomy: snap.ComfortVsEconomy,
				MaxWalkMinutes:   snap.MaxWalkMinutes,
				MaxTransfers:     snap.MaxTransfers,
				SampleCount:      snap.SampleCount,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(outcomes) == 0 {
		fmt.Fprintln(os.Stderr, "no outcomes recorded")
		return nil
	}

	fmt.Printf("%-10s %-8s %-8s %10s %10s %9s  %s\n",
		"intent", "mode", "accepted", "walk_min", "transfers", "duration", "created_at")
	for _, o := range outcomes {
		fmt.Printf("%-10s %-8s %-8t %10.1f %10d %9.0f  %s\n",
			o.Intent, o.Mode, o.Accepted, o.WalkMinutes, o.Transfers, o.DurationMinutes,
			o.CreatedAt.Format("2006-01-02 15:04"))
	}

	if snap == nil {
		fmt.Println("\nsnapshot: not enough accepted trips yet")
		return nil
	}
	fmt.Printf("\nsnapshot over %d accepted trips:\n", snap.SampleCount)
	fmt.Printf("  calm_vs_fast       %+.3f\n", snap.CalmVsFast)
	fmt.Printf("  comfort_vs_economy %+.3f\n", snap.ComfortVsEconomy)
	fmt.Printf("  max_walk_minutes   %.1f\n", snap.MaxWalkMinutes)
	fmt.Printf("  max_transfers      %d\n", snap.MaxTransfers)
	return nil
}

// #endregion run
