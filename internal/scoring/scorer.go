package scoring

// #region imports
import (
	"strings"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

// #endregion

// #region score-candidate

// ScoreCandidate derives raw metrics and the three 0-100 dimension scores for
// one candidate. Pure and side-effect-free: identical input always yields
// identical output, which the auditor relies on.
func ScoreCandidate(in trip.RouteInput, ctx trip.TripContext, cfg Config) ScoredCandidate {
	m := deriveMetrics(in, ctx, cfg)

	c := ScoredCandidate{
		Input:   in,
		Metrics: m,
		Calm:    calmScore(in, m, ctx, cfg),
		Fast:    fastScore(in, cfg),
		Comfort: comfortScore(in, m, ctx, cfg),
	}
	c.Archetype = dominantDimension(c)
	return c
}

// ScoreAll scores every candidate, preserving provider order.
func ScoreAll(inputs []trip.RouteInput, ctx trip.TripContext, cfg Config) []ScoredCandidate {
	out := make([]ScoredCandidate, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, ScoreCandidate(in, ctx, cfg))
	}
	return out
}

// #endregion score-candidate

// #region derive-metrics

func deriveMetrics(in trip.RouteInput, ctx trip.TripContext, cfg Config) Metrics {
	var m Metrics
	transitLegs := 0
	for _, leg := range in.Legs {
		switch leg.Kind {
		case trip.LegWalk:
			m.WalkMinutes += leg.Minutes
			m.WalkMeters += leg.Meters
		case trip.LegTransit:
			transitLegs++
			m.StopCount += len(leg.Stops)
			if !m.ComplexInterchange {
				m.ComplexInterchange = hasComplexInterchange(leg.Stops, ctx.City.ComplexInterchanges)
			}
		}
	}
	m.Transfers = transitLegs - 1
	if m.Transfers < 0 {
		m.Transfers = 0
	}
	m.WeatherExposed = m.WalkMinutes >= cfg.ExposureWalkMinutes
	return m
}

// hasComplexInterchange matches stop names against the city's named list,
// case-insensitive substring in either direction.
func hasComplexInterchange(stops, named []string) bool {
	for _, stop := range stops {
		stopLower := strings.ToLower(stop)
		for _, n := range named {
			nLower := strings.ToLower(n)
			if strings.Contains(stopLower, nLower) || strings.Contains(nLower, stopLower) {
				return true
			}
		}
	}
	return false
}

// #endregion derive-metrics

// #region calm

func calmScore(in trip.RouteInput, m Metrics, ctx trip.TripContext, cfg Config) float64 {
	score := 100.0

	score -= float64(m.Transfers) * cfg.TransferCalmPenalty
	if m.ComplexInterchange {
		score -= cfg.ComplexCalmPenalty
	}
	if m.WalkMinutes > cfg.WalkCalmFreeMinutes {
		score -= (m.WalkMinutes - cfg.WalkCalmFreeMinutes) * cfg.WalkCalmPerMinute
	}

	if ctx.Time.IsNight {
		if in.Mode.Motorized() {
			// Contextual: a car at night sidesteps unreliable late service.
			score += cfg.NightDrivingBonus
		} else {
			penalty := cfg.NightPenaltyScale * (1 - ctx.City.NightReliability)
			if ctx.Time.IsLateNight {
				penalty *= 2
			}
			score -= penalty
		}
	}

	return clampScore(score)
}

// #endregion calm

// #region fast

// fastScore is the linear inverse of duration between a floor (max score)
// and a ceiling (zero), clamped.
func fastScore(in trip.RouteInput, cfg Config) float64 {
	d := in.DurationMinutes
	if d <= cfg.FastFloorMinutes {
		return 100
	}
	if d >= cfg.FastCeilingMinutes {
		return 0
	}
	span := cfg.FastCeilingMinutes - cfg.FastFloorMinutes
	return clampScore(100 * (cfg.FastCeilingMinutes - d) / span)
}

// #endregion fast

// #region comfort

func comfortScore(in trip.RouteInput, m Metrics, ctx trip.TripContext, cfg Config) float64 {
	score := 100.0
	weatherBonusApplied := false

	if !ctx.Weather.OutdoorFriendly {
		score -= m.WalkMinutes * cfg.WetWalkPerMinute
		if in.Mode.Motorized() {
			score += cfg.WetDrivingBonus
			weatherBonusApplied = true
		}
	}

	if m.WalkMinutes > cfg.WalkComfortFreeMinutes {
		score -= (m.WalkMinutes - cfg.WalkComfortFreeMinutes) * cfg.WalkComfortPerMinute
	}
	score -= float64(m.Transfers) * cfg.TransferComfortPenalty

	if ctx.Time.IsLateNight {
		if in.Mode.Motorized() {
			score += cfg.LateNightDrivingBonus
		} else {
			score -= cfg.LateNightComfortPenalty
		}
	} else if ctx.Time.IsNight && !in.Mode.Motorized() {
		score -= cfg.NightComfortPenalty
	}

	if ctx.Weather.ExtremeTemp() {
		score -= m.WalkMinutes * cfg.ExtremeTempPerMinute
		// Mutually exclusive with the wet-weather bonus above.
		if in.Mode.Motorized() && !weatherBonusApplied {
			score += cfg.WetDrivingBonus
		}
	}

	return clampScore(score)
}

// #endregion comfort

// #region archetype

// dominantDimension picks the max-scoring dimension; ties break
// calm > fast > comfort.
func dominantDimension(c ScoredCandidate) Dimension {
	best := DimCalm
	bestScore := c.Calm
	if c.Fast > bestScore {
		best = DimFast
		bestScore = c.Fast
	}
	if c.Comfort > bestScore {
		best = DimComfort
	}
	return best
}

// #endregion archetype

// #region helpers

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// #endregion helpers
