package audit

// #region imports
import (
	"time"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/explain"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/weights"
)

// #endregion

// #region inputs

// InputRecord captures the exact request inputs as evaluated at runtime.
type InputRecord struct {
	Intent       trip.Intent `json:"intent"`
	NotePresent  bool        `json:"note_present"`
	NoteTags     []note.Tag  `json:"note_tags,omitempty"`
	PaceSlider   int         `json:"pace_slider"`
	BudgetSlider int         `json:"budget_slider"`
	Unfamiliar   bool        `json:"unfamiliar_city"`
	City         string      `json:"city"`
	IsNight      bool        `json:"is_night"`
	IsLateNight  bool        `json:"is_late_night"`
	IsRushHour   bool        `json:"is_rush_hour"`
	HasLearned   bool        `json:"has_learned_snapshot"`
}

// #endregion inputs

// #region constraints

// ConstraintRecord captures the derived constraints active at decision time.
type ConstraintRecord struct {
	Weights       weights.Vector `json:"weights"`
	ExcludedModes []trip.Mode    `json:"excluded_modes,omitempty"`
}

// #endregion constraints

// #region candidate-record

// CandidateRecord is one scored candidate as the selector saw it.
type CandidateRecord struct {
	Mode            trip.Mode         `json:"mode"`
	DurationMinutes float64           `json:"duration_minutes"`
	WalkMinutes     float64           `json:"walk_minutes"`
	Transfers       int               `json:"transfers"`
	Complex         bool              `json:"complex_interchange"`
	Exposed         bool              `json:"weather_exposed"`
	Calm            float64           `json:"calm"`
	Fast            float64           `json:"fast"`
	Comfort         float64           `json:"comfort"`
	Archetype       scoring.Dimension `json:"archetype"`
	FinalScore      float64           `json:"final_score"`
	Penalty         float64           `json:"penalty,omitempty"`
}

// #endregion candidate-record

// #region decision-record

// DecisionRecord is the final outcome portion of a log entry.
type DecisionRecord struct {
	WinnerMode      trip.Mode               `json:"winner_mode"`
	Archetype       scoring.Dimension       `json:"archetype"`
	WinnerTransfers int                     `json:"winner_transfers"`
	Context         explain.DecisionContext `json:"context"`
	Rendered        string                  `json:"rendered"`
}

// #endregion decision-record

// #region violation

// RuleID identifies one honesty invariant.
type RuleID string

const (
	RuleOnlyOptionIntent  RuleID = "only_option_intent_claim"
	RuleFallbackCompared  RuleID = "fallback_compared_claim"
	RuleNoteWithoutTags   RuleID = "note_claim_without_tags"
	RuleCalmOverTransfers RuleID = "calm_archetype_over_transfers"
)

// Violation is one honesty finding. Informational, never blocking.
type Violation struct {
	Rule   RuleID `json:"rule"`
	Detail string `json:"detail"`
}

// #endregion violation

// #region decision-log

// DecisionLog is the audit record for one request: inputs → constraints →
// candidates → decision, plus any honesty findings.
type DecisionLog struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Inputs      InputRecord       `json:"inputs"`
	Constraints ConstraintRecord  `json:"constraints"`
	Candidates  []CandidateRecord `json:"candidates"`
	Decision    DecisionRecord    `json:"decision"`
	Fallback    bool              `json:"fallback,omitempty"`
	Violations  []Violation       `json:"violations,omitempty"`
}

// #endregion decision-log
