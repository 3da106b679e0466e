package selector

// #region imports
import (
	"errors"
	"sort"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/weights"
)

// #endregion

// #region errors

// ErrEmptyCandidateSet signals there was nothing to recommend. Fatal;
// the caller decides whether to re-fetch candidates.
var ErrEmptyCandidateSet = errors.New("empty candidate set")

// #endregion errors

// #region config

// Config holds the selection thresholds and secondary-penalty constants.
type Config struct {
	EconomyFilterThreshold int     `yaml:"economy_filter_threshold"` // budget slider at or below this triggers the mode filter
	WalkPenaltyPerMinute   float64 `yaml:"walk_penalty_per_minute"`  // scaled by the note's walking penalty
	LearnedWalkPenalty     float64 `yaml:"learned_walk_penalty"`     // flat penalty past the learned walking tolerance
	LearnedTransferPenalty float64 `yaml:"learned_transfer_penalty"` // flat penalty past the learned transfer tolerance
}

// DefaultConfig returns the production selection constants.
func DefaultConfig() Config {
	return Config{
		EconomyFilterThreshold: 20,
		WalkPenaltyPerMinute:   0.8,
		LearnedWalkPenalty:     8,
		LearnedTransferPenalty: 6,
	}
}

// #endregion config

// #region ranked

// Ranked pairs a scored candidate with its final weighted score. Produced by
// ranking as a new ordered sequence; the scored candidates are never mutated.
type Ranked struct {
	Candidate  scoring.ScoredCandidate
	FinalScore float64
	Penalty    float64 // total secondary penalty already folded into FinalScore
}

// #endregion ranked

// #region result

// Result is the selection outcome.
type Result struct {
	Winner        Ranked
	RunnerUp      *Ranked // nil when only one candidate survived
	Ranking       []Ranked
	WasOnlyOption bool
	ExcludedModes []trip.Mode // modes removed by the economy hard filter
}

// #endregion result

// #region select

// Select applies the economy hard filter, ranks by weighted score plus
// secondary penalties, and picks a winner. A one-element candidate list
// returns immediately with WasOnlyOption set; its reasoning must come only
// from the candidate's own metrics.
func Select(cands []scoring.ScoredCandidate, ctx trip.TripContext, w weights.Vector, mods note.Modifiers, cfg Config) (Result, error) {
	if len(cands) == 0 {
		return Result{}, ErrEmptyCandidateSet
	}

	if len(cands) == 1 {
		only := Ranked{Candidate: cands[0], FinalScore: w.Dot(cands[0])}
		return Result{
			Winner:        only,
			Ranking:       []Ranked{only},
			WasOnlyOption: true,
		}, nil
	}

	pool, excluded := applyEconomyFilter(cands, ctx, cfg)
	if len(pool) == 1 {
		only := Ranked{Candidate: pool[0], FinalScore: w.Dot(pool[0])}
		return Result{
			Winner:        only,
			Ranking:       []Ranked{only},
			WasOnlyOption: true,
			ExcludedModes: excluded,
		}, nil
	}

	ranking := make([]Ranked, 0, len(pool))
	for _, c := range pool {
		penalty := secondaryPenalty(c, ctx, mods, cfg)
		ranking = append(ranking, Ranked{
			Candidate:  c,
			FinalScore: w.Dot(c) - penalty,
			Penalty:    penalty,
		})
	}

	// Stable: equal final scores keep provider order. Explicit tie-break rule:
	// the upstream provider lists its preferred option first.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].FinalScore > ranking[j].FinalScore
	})

	res := Result{
		Winner:        ranking[0],
		Ranking:       ranking,
		ExcludedModes: excluded,
	}
	runnerUp := ranking[1]
	res.RunnerUp = &runnerUp
	return res, nil
}

// #endregion select

// #region economy-filter

// applyEconomyFilter removes the costliest mode present when the budget
// slider sits at or below the threshold and a cheaper mode remains.
func applyEconomyFilter(cands []scoring.ScoredCandidate, ctx trip.TripContext, cfg Config) ([]scoring.ScoredCandidate, []trip.Mode) {
	if ctx.BudgetSlider > cfg.EconomyFilterThreshold {
		return cands, nil
	}

	maxRank, minRank := cands[0].Input.Mode.CostRank(), cands[0].Input.Mode.CostRank()
	for _, c := range cands[1:] {
		r := c.Input.Mode.CostRank()
		if r > maxRank {
			maxRank = r
		}
		if r < minRank {
			minRank = r
		}
	}
	if maxRank == minRank {
		return cands, nil // nothing cheaper remains; keep everything
	}

	kept := make([]scoring.ScoredCandidate, 0, len(cands))
	var excluded []trip.Mode
	for _, c := range cands {
		if c.Input.Mode.CostRank() == maxRank {
			if !containsMode(excluded, c.Input.Mode) {
				excluded = append(excluded, c.Input.Mode)
			}
			continue
		}
		kept = append(kept, c)
	}
	return kept, excluded
}

func containsMode(modes []trip.Mode, m trip.Mode) bool {
	for _, x := range modes {
		if x == m {
			return true
		}
	}
	return false
}

// #endregion economy-filter

// #region secondary-penalties

// secondaryPenalty applies note-driven walking aversion and learned
// tolerance breaches on top of the weighted score.
func secondaryPenalty(c scoring.ScoredCandidate, ctx trip.TripContext, mods note.Modifiers, cfg Config) float64 {
	var p float64

	if mods.WalkingPenalty > 0 {
		p += mods.WalkingPenalty * c.Metrics.WalkMinutes * cfg.WalkPenaltyPerMinute
	}

	if learned := ctx.Learned; learned != nil {
		if learned.MaxWalkMinutes > 0 && c.Metrics.WalkMinutes > learned.MaxWalkMinutes {
			p += cfg.LearnedWalkPenalty
		}
		if learned.MaxTransfers >= 0 && c.Metrics.Transfers > learned.MaxTransfers {
			p += cfg.LearnedTransferPenalty
		}
	}

	return p
}

// #endregion secondary-penalties
