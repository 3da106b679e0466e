package scoring

// #region imports
import "github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"

// #endregion

// #region dimension

// Dimension is one trade-off axis a candidate is scored on.
type Dimension string

const (
	DimCalm    Dimension = "calm"
	DimFast    Dimension = "fast"
	DimComfort Dimension = "comfort"
)

// #endregion dimension

// #region metrics

// Metrics are the raw per-candidate measurements derived from the route
// breakdown before any scoring.
type Metrics struct {
	WalkMinutes        float64
	WalkMeters         float64
	Transfers          int
	ComplexInterchange bool
	WeatherExposed     bool
	StopCount          int
}

// #endregion metrics

// #region scored-candidate

// ScoredCandidate is an immutable scored value: the provider input plus
// derived metrics and the three dimension scores. Ranking happens in the
// selector and never mutates one of these.
type ScoredCandidate struct {
	Input     trip.RouteInput
	Metrics   Metrics
	Calm      float64 // 0-100
	Fast      float64 // 0-100
	Comfort   float64 // 0-100
	Archetype Dimension
}

// Score returns the dimension score for d.
func (c ScoredCandidate) Score(d Dimension) float64 {
	switch d {
	case DimCalm:
		return c.Calm
	case DimFast:
		return c.Fast
	case DimComfort:
		return c.Comfort
	}
	return 0
}

// #endregion scored-candidate

// #region config

// Config holds the scoring constants. Defaults match production tuning.
type Config struct {
	TransferCalmPenalty     float64 `yaml:"transfer_calm_penalty"` // per transfer
	ComplexCalmPenalty      float64 `yaml:"complex_calm_penalty"`
	WalkCalmFreeMinutes     float64 `yaml:"walk_calm_free_minutes"` // walking below this costs no calm
	WalkCalmPerMinute       float64 `yaml:"walk_calm_per_minute"`
	NightPenaltyScale       float64 `yaml:"night_penalty_scale"` // scaled by (1 - night reliability)
	NightDrivingBonus       float64 `yaml:"night_driving_bonus"`
	FastFloorMinutes        float64 `yaml:"fast_floor_minutes"`   // at or below, fast = 100
	FastCeilingMinutes      float64 `yaml:"fast_ceiling_minutes"` // at or above, fast = 0
	WetWalkPerMinute        float64 `yaml:"wet_walk_per_minute"`
	WetDrivingBonus         float64 `yaml:"wet_driving_bonus"`
	WalkComfortFreeMinutes  float64 `yaml:"walk_comfort_free_minutes"`
	WalkComfortPerMinute    float64 `yaml:"walk_comfort_per_minute"`
	TransferComfortPenalty  float64 `yaml:"transfer_comfort_penalty"`
	NightComfortPenalty     float64 `yaml:"night_comfort_penalty"`
	LateNightComfortPenalty float64 `yaml:"late_night_comfort_penalty"`
	LateNightDrivingBonus   float64 `yaml:"late_night_driving_bonus"`
	ExtremeTempPerMinute    float64 `yaml:"extreme_temp_per_minute"`
	ExposureWalkMinutes     float64 `yaml:"exposure_walk_minutes"` // walking at or beyond this flags weather exposure
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		TransferCalmPenalty:     15,
		ComplexCalmPenalty:      20,
		WalkCalmFreeMinutes:     15,
		WalkCalmPerMinute:       2,
		NightPenaltyScale:       20,
		NightDrivingBonus:       10,
		FastFloorMinutes:        10,
		FastCeilingMinutes:      90,
		WetWalkPerMinute:        3,
		WetDrivingBonus:         15,
		WalkComfortFreeMinutes:  10,
		WalkComfortPerMinute:    1.5,
		TransferComfortPenalty:  10,
		NightComfortPenalty:     10,
		LateNightComfortPenalty: 20,
		LateNightDrivingBonus:   10,
		ExtremeTempPerMinute:    1,
		ExposureWalkMinutes:     5,
	}
}

// #endregion config
