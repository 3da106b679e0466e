package trip

// #region imports
import (
	"errors"
	"fmt"
)

// #endregion

// #region intent

// Intent is the rider-declared trip purpose. It selects the base trade-off
// weights before any slider or note adjustment.
type Intent string

const (
	IntentWork    Intent = "work"
	IntentLeisure Intent = "leisure"
	IntentErrand  Intent = "errand"
	IntentDate    Intent = "date"
	IntentFlight  Intent = "flight"
)

// ErrUnknownIntent signals a caller contract violation: intents must be
// validated before the engine runs.
var ErrUnknownIntent = errors.New("unknown intent")

// ParseIntent validates a raw intent string.
func ParseIntent(raw string) (Intent, error) {
	switch Intent(raw) {
	case IntentWork, IntentLeisure, IntentErrand, IntentDate, IntentFlight:
		return Intent(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIntent, raw)
}

// #endregion intent

// #region mode

// Mode is how a candidate covers the trip.
type Mode string

const (
	ModeWalk    Mode = "walk"
	ModeTransit Mode = "transit"
	ModeDriving Mode = "driving"
	ModeTaxi    Mode = "taxi"
)

// CostRank orders modes by typical monetary cost. The economy hard filter
// removes the highest rank present when a cheaper rank remains.
func (m Mode) CostRank() int {
	switch m {
	case ModeWalk:
		return 0
	case ModeTransit:
		return 1
	case ModeDriving:
		return 2
	case ModeTaxi:
		return 3
	}
	return 1
}

// Motorized reports whether the rider sits in a vehicle door to door.
func (m Mode) Motorized() bool {
	return m == ModeDriving || m == ModeTaxi
}

// #endregion mode

// #region city-profile

// CityProfile carries static per-city knowledge used during scoring.
type CityProfile struct {
	Name                string   `yaml:"name"`
	NightReliability    float64  `yaml:"night_reliability"`    // 0-1, transit trustworthiness after dark
	WalkFriendliness    float64  `yaml:"walk_friendliness"`    // 0-1
	ComplexInterchanges []string `yaml:"complex_interchanges"` // station names matched case-insensitively
}

// #endregion city-profile

// #region weather

// WeatherSnapshot is the weather at decision time.
type WeatherSnapshot struct {
	OutdoorFriendly bool    `yaml:"outdoor_friendly" json:"outdoor_friendly"`
	TempC           float64 `yaml:"temp_c" json:"temp_c"`
}

// ExtremeTemp reports whether walking is punishing regardless of rain.
func (w WeatherSnapshot) ExtremeTemp() bool {
	return w.TempC <= 0 || w.TempC >= 32
}

// #endregion weather

// #region time-flags

// TimeFlags captures the coarse time-of-day context.
type TimeFlags struct {
	IsNight     bool `json:"is_night"`
	IsLateNight bool `json:"is_late_night"` // implies IsNight in practice; scorer doubles night penalties
	IsRushHour  bool `json:"is_rush_hour"`
}

// #endregion time-flags

// #region preference-snapshot

// PreferenceSnapshot holds numeric biases accumulated from trip history.
// Read-only per invocation; the engine never writes one back.
type PreferenceSnapshot struct {
	CalmVsFast       float64 // positive leans calm, negative leans fast; clamped to ±0.15 on apply
	ComfortVsEconomy float64 // positive leans comfort; clamped to ±0.15 on apply
	MaxWalkMinutes   float64 // observed walking tolerance; 0 = unknown
	MaxTransfers     int     // observed transfer tolerance; negative = unknown
	SampleCount      int
}

// #endregion preference-snapshot

// #region route-input

// LegKind distinguishes walking from riding within a candidate breakdown.
type LegKind string

const (
	LegWalk    LegKind = "walk"
	LegTransit LegKind = "transit"
)

// RouteLeg is one step of a provider-supplied route breakdown.
type RouteLeg struct {
	Kind    LegKind  `json:"kind"`
	Minutes float64  `json:"minutes"`
	Meters  float64  `json:"meters,omitempty"`
	Line    string   `json:"line,omitempty"`
	Stops   []string `json:"stops,omitempty"` // named stops, including interchange stations
}

// RouteInput is one candidate way to make the trip, as delivered by the
// external routing provider. Order within the candidate list is meaningful:
// equal final scores keep provider order.
type RouteInput struct {
	Mode            Mode       `json:"mode"`
	DurationMinutes float64    `json:"duration_minutes"`
	Legs            []RouteLeg `json:"legs"`
}

// #endregion route-input

// #region trip-context

// TripContext is the immutable per-request bundle of everything the engine
// may consult besides the candidates themselves.
type TripContext struct {
	Intent         Intent
	Note           string // optional free text
	PaceSlider     int    // 0 calm .. 100 fast
	BudgetSlider   int    // 0 economy .. 100 comfort
	UnfamiliarCity bool
	City           CityProfile
	Weather        WeatherSnapshot
	Time           TimeFlags
	Learned        *PreferenceSnapshot // nil when no history is available
}

// #endregion trip-context
