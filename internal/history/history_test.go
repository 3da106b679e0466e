package history

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "outcomes.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func acceptedOutcome(mode trip.Mode, walkMin float64, transfers int, age time.Duration) Outcome {
	return Outcome{
		Intent:          trip.IntentWork,
		Mode:            mode,
		WalkMinutes:     walkMin,
		Transfers:       transfers,
		DurationMinutes: 30,
		Accepted:        true,
		CreatedAt:       time.Now().UTC().Add(-age),
	}
}

func TestRecordAndRecent(t *testing.T) {
	s := tempStore(t)

	old := acceptedOutcome(trip.ModeTransit, 10, 1, 48*time.Hour)
	recent := acceptedOutcome(trip.ModeDriving, 0, 0, time.Hour)
	for _, o := range []Outcome{old, recent} {
		if err := s.RecordOutcome(o); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(got))
	}
	if got[0].Mode != trip.ModeDriving {
		t.Fatalf("expected newest first, got %s", got[0].Mode)
	}
	if got[0].ID == "" {
		t.Fatal("missing ID should have been filled in")
	}
	if !got[0].Accepted {
		t.Fatal("accepted flag lost in round trip")
	}
}

func TestSnapshotRequiresMinimumSamples(t *testing.T) {
	s := tempStore(t)

	for i := 0; i < 2; i++ {
		if err := s.RecordOutcome(acceptedOutcome(trip.ModeTransit, 10, 0, time.Hour)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap != nil {
		t.Fatalf("two samples are too thin for a snapshot, got %+v", snap)
	}
}

func TestSnapshotIgnoresRejectedOutcomes(t *testing.T) {
	s := tempStore(t)

	for i := 0; i < 5; i++ {
		o := acceptedOutcome(trip.ModeTransit, 10, 0, time.Hour)
		o.Accepted = false
		if err := s.RecordOutcome(o); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap != nil {
		t.Fatal("rejected outcomes must not produce a snapshot")
	}
}

func TestSnapshotBiasDirections(t *testing.T) {
	s := tempStore(t)

	// Every accepted trip was a direct, non-motorized pick: leans calm,
	// leans away from comfort.
	for i := 0; i < 4; i++ {
		if err := s.RecordOutcome(acceptedOutcome(trip.ModeTransit, 12, 0, time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("four accepted samples should produce a snapshot")
	}
	if math.Abs(snap.CalmVsFast-0.15) > 1e-6 {
		t.Fatalf("all-direct history should pin the calm bias at +0.15, got %f", snap.CalmVsFast)
	}
	if math.Abs(snap.ComfortVsEconomy+0.15) > 1e-6 {
		t.Fatalf("all-transit history should pin the comfort bias at -0.15, got %f", snap.ComfortVsEconomy)
	}
	if snap.MaxWalkMinutes != 12 {
		t.Fatalf("expected observed walking tolerance 12, got %f", snap.MaxWalkMinutes)
	}
	if snap.MaxTransfers != 0 {
		t.Fatalf("expected observed transfer tolerance 0, got %d", snap.MaxTransfers)
	}
	if snap.SampleCount != 4 {
		t.Fatalf("expected 4 samples, got %d", snap.SampleCount)
	}
}

func TestSnapshotMixedHistoryStaysBounded(t *testing.T) {
	s := tempStore(t)

	outcomes := []Outcome{
		acceptedOutcome(trip.ModeTransit, 5, 0, time.Hour),
		acceptedOutcome(trip.ModeTransit, 15, 2, 2*time.Hour),
		acceptedOutcome(trip.ModeTaxi, 0, 0, 3*time.Hour),
		acceptedOutcome(trip.ModeDriving, 0, 0, 4*time.Hour),
	}
	for _, o := range outcomes {
		if err := s.RecordOutcome(o); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if math.Abs(snap.CalmVsFast) > 0.15 || math.Abs(snap.ComfortVsEconomy) > 0.15 {
		t.Fatalf("biases must stay within +-0.15, got %f / %f", snap.CalmVsFast, snap.ComfortVsEconomy)
	}
	// Three of four picks were direct: calm bias leans positive. Two of four
	// were motorized: comfort bias stays near zero.
	if snap.CalmVsFast <= 0 {
		t.Fatalf("mostly-direct history should lean calm, got %f", snap.CalmVsFast)
	}
	if snap.MaxTransfers != 2 {
		t.Fatalf("expected transfer tolerance 2, got %d", snap.MaxTransfers)
	}
}
