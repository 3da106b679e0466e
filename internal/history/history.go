package history

// #region imports
import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

// #endregion

// #region schema

const tripOutcomesSchema = `
CREATE TABLE IF NOT EXISTS trip_outcomes (
	id               TEXT PRIMARY KEY,
	intent           TEXT NOT NULL,
	mode             TEXT NOT NULL,
	walk_minutes     REAL NOT NULL,
	transfers        INTEGER NOT NULL,
	duration_minutes REAL NOT NULL,
	accepted         INTEGER NOT NULL DEFAULT 0,
	created_at       TEXT NOT NULL
);
`

const tripOutcomesIndex = `
CREATE INDEX IF NOT EXISTS idx_trip_outcomes_created
ON trip_outcomes(created_at);
`

// #endregion schema

// #region outcome

// Outcome is one recommended route plus whether the rider took it. Recorded
// by the host after the fact; the decision engine never writes here.
type Outcome struct {
	ID              string
	Intent          trip.Intent
	Mode            trip.Mode
	WalkMinutes     float64
	Transfers       int
	DurationMinutes float64
	Accepted        bool
	CreatedAt       time.Time
}

// #endregion outcome

// #region store

// Store persists trip outcomes in SQLite and derives decay-weighted
// preference snapshots from them.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(tripOutcomesSchema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if _, err := db.Exec(tripOutcomesIndex); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region record-outcome

// RecordOutcome persists a single trip outcome row.
func (s *Store) RecordOutcome(o Outcome) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	accepted := 0
	if o.Accepted {
		accepted = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO trip_outcomes
		(id, intent, mode, walk_minutes, transfers, duration_minutes, accepted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID,
		string(o.Intent),
		string(o.Mode),
		o.WalkMinutes,
		o.Transfers,
		o.DurationMinutes,
		accepted,
		o.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// #endregion record-outcome

// #region recent

// Recent returns the most recent outcomes, newest first.
func (s *Store) Recent(limit int) ([]Outcome, error) {
	rows, err := s.db.Query(`
		SELECT id, intent, mode, walk_minutes, transfers, duration_minutes, accepted, created_at
		FROM trip_outcomes ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent outcomes: %w", err)
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var o Outcome
		var intent, mode, createdStr string
		var accepted int
		if err := rows.Scan(&o.ID, &intent, &mode, &o.WalkMinutes, &o.Transfers, &o.DurationMinutes, &accepted, &createdStr); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.Intent = trip.Intent(intent)
		o.Mode = trip.Mode(mode)
		o.Accepted = accepted == 1
		o.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		out = append(out, o)
	}
	return out, rows.Err()
}

// #endregion recent

// #region snapshot

const (
	// decayHalfLifeHours weights recent trips heavier (7 days).
	decayHalfLifeHours = 7.0 * 24.0
	// minAcceptedSamples is required before a snapshot is produced at all.
	minAcceptedSamples = 3
	// maxBias bounds both learned biases.
	maxBias = 0.15
)

// Snapshot derives a read-only PreferenceSnapshot from accepted outcomes with
// exponential time decay. Returns (nil, nil) when history is too thin to say
// anything, which the engine treats as "no learned preferences".
func (s *Store) Snapshot() (*trip.PreferenceSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT mode, walk_minutes, transfers, created_at
		FROM trip_outcomes WHERE accepted = 1`)
	if err != nil {
		return nil, fmt.Errorf("snapshot query: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	var (
		totalWeight  float64
		calmSum      float64 // +w for zero-transfer picks, -w otherwise
		comfortSum   float64 // +w for motorized picks, -w otherwise
		maxWalk      float64
		maxTransfers int
		count        int
	)
	maxTransfers = -1

	for rows.Next() {
		var mode, createdStr string
		var walkMin float64
		var transfers int
		if err := rows.Scan(&mode, &walkMin, &transfers, &createdStr); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdStr)
		if err != nil {
			continue
		}
		ageHours := now.Sub(createdAt).Hours()
		w := math.Exp(-ageHours / decayHalfLifeHours)

		if transfers == 0 {
			calmSum += w
		} else {
			calmSum -= w
		}
		if trip.Mode(mode).Motorized() {
			comfortSum += w
		} else {
			comfortSum -= w
		}

		if walkMin > maxWalk {
			maxWalk = walkMin
		}
		if transfers > maxTransfers {
			maxTransfers = transfers
		}
		totalWeight += w
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if count < minAcceptedSamples || totalWeight == 0 {
		return nil, nil
	}

	return &trip.PreferenceSnapshot{
		CalmVsFast:       maxBias * calmSum / totalWeight,
		ComfortVsEconomy: maxBias * comfortSum / totalWeight,
		MaxWalkMinutes:   maxWalk,
		MaxTransfers:     maxTransfers,
		SampleCount:      count,
	}, nil
}

// #endregion snapshot
