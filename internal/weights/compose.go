package weights

// #region imports
import (
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

// #endregion

// #region vector

// Vector is the normalized {calm, fast, comfort} weight triple. Fractions
// are non-negative and sum to 1 after every Compose call.
type Vector struct {
	Calm    float64 `json:"calm"`
	Fast    float64 `json:"fast"`
	Comfort float64 `json:"comfort"`
}

// Dot computes the weighted final score for a scored candidate.
func (v Vector) Dot(c scoring.ScoredCandidate) float64 {
	return v.Calm*c.Calm + v.Fast*c.Fast + v.Comfort*c.Comfort
}

// Top returns the heaviest dimension; ties break calm > fast > comfort.
func (v Vector) Top() scoring.Dimension {
	best := scoring.DimCalm
	bestW := v.Calm
	if v.Fast > bestW {
		best = scoring.DimFast
		bestW = v.Fast
	}
	if v.Comfort > bestW {
		best = scoring.DimComfort
	}
	return best
}

// #endregion vector

// #region base-tables

// baseWeights maps intent → starting {calm, fast, comfort} triple.
// Time-pressured intents weight fast highest; exploring intents weight calm.
var baseWeights = map[trip.Intent]Vector{
	trip.IntentWork:    {Calm: 0.15, Fast: 0.65, Comfort: 0.20},
	trip.IntentLeisure: {Calm: 0.50, Fast: 0.20, Comfort: 0.30},
	trip.IntentErrand:  {Calm: 0.25, Fast: 0.45, Comfort: 0.30},
	trip.IntentDate:    {Calm: 0.35, Fast: 0.15, Comfort: 0.50},
	trip.IntentFlight:  {Calm: 0.15, Fast: 0.65, Comfort: 0.20},
}

// BaseFor returns the per-intent base triple.
func BaseFor(intent trip.Intent) Vector {
	if v, ok := baseWeights[intent]; ok {
		return v
	}
	return baseWeights[trip.IntentErrand]
}

// #endregion base-tables

// #region adjustment-bounds

const (
	maxAdjustment      = 0.3  // cap on any single additive adjustment
	maxLearnedNudge    = 0.15 // cap on each learned-preference nudge
	unfamiliarCalmBump = 0.12

	noteComfortScale = 0.25
	noteRushScale    = 0.2
	noteWalkScale    = 0.1
)

// #endregion adjustment-bounds

// #region compose

// Compose converts intent, the two sliders, note modifiers, the unfamiliarity
// flag, and an optional learned snapshot into a normalized weight vector.
// Adjustments apply in a fixed order, each bounded, then the vector is
// renormalized to sum to 1.
func Compose(ctx trip.TripContext, mods note.Modifiers) Vector {
	v := BaseFor(ctx.Intent)

	// 1. Pace slider: shift calm↔fast proportional to distance from center.
	shift := boundAdjustment(maxAdjustment * float64(ctx.PaceSlider-50) / 50)
	v.Fast += shift
	v.Calm -= shift

	// 2. Budget slider: shift comfort proportional to distance from center.
	comfortShift := boundAdjustment(maxAdjustment * float64(ctx.BudgetSlider-50) / 50)
	v.Comfort += comfortShift

	// 3. Note modifiers nudge comfort and calm.
	v.Comfort += boundAdjustment(noteComfortScale * mods.ComfortBonus)
	v.Calm += boundAdjustment(noteRushScale * mods.RushPenalty)
	v.Comfort += boundAdjustment(noteWalkScale * mods.WalkingPenalty)

	// 4. Unfamiliar city: fixed calm bonus.
	if ctx.UnfamiliarCity {
		v.Calm += unfamiliarCalmBump
	}

	// 5. Learned preferences, each nudge capped independently.
	if ctx.Learned != nil {
		calmNudge := clampAbs(ctx.Learned.CalmVsFast, maxLearnedNudge)
		v.Calm += calmNudge
		v.Fast -= calmNudge
		v.Comfort += clampAbs(ctx.Learned.ComfortVsEconomy, maxLearnedNudge)
	}

	return v.normalize()
}

// #endregion compose

// #region normalize

// normalize floors negative fractions at zero and rescales to sum 1.
func (v Vector) normalize() Vector {
	if v.Calm < 0 {
		v.Calm = 0
	}
	if v.Fast < 0 {
		v.Fast = 0
	}
	if v.Comfort < 0 {
		v.Comfort = 0
	}
	sum := v.Calm + v.Fast + v.Comfort
	if sum == 0 {
		// Degenerate: fall back to an even split.
		return Vector{Calm: 1.0 / 3, Fast: 1.0 / 3, Comfort: 1.0 / 3}
	}
	return Vector{Calm: v.Calm / sum, Fast: v.Fast / sum, Comfort: v.Comfort / sum}
}

// #endregion normalize

// #region helpers

func boundAdjustment(d float64) float64 {
	return clampAbs(d, maxAdjustment)
}

func clampAbs(d, limit float64) float64 {
	if d > limit {
		return limit
	}
	if d < -limit {
		return -limit
	}
	return d
}

// #endregion helpers
