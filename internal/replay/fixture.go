package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/config"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a set of
// recorded decision cases with their expected outcomes.
type Fixture struct {
	Description string        `json:"description"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureCase is one recorded request plus what the engine decided at the
// time it was captured.
type FixtureCase struct {
	CaseID   string            `json:"case_id"`
	Context  FixtureContext    `json:"context"`
	Routes   []trip.RouteInput `json:"routes"`
	Expected ExpectedDecision  `json:"expected"`
}

// FixtureContext mirrors trip.TripContext with JSON tags. The city is named
// and resolved against the loaded profile set.
type FixtureContext struct {
	Intent       string                   `json:"intent"`
	Note         string                   `json:"note,omitempty"`
	PaceSlider   int                      `json:"pace_slider"`
	BudgetSlider int                      `json:"budget_slider"`
	Unfamiliar   bool                     `json:"unfamiliar_city,omitempty"`
	City         string                   `json:"city"`
	Weather      trip.WeatherSnapshot     `json:"weather"`
	Time         trip.TimeFlags           `json:"time"`
	Learned      *trip.PreferenceSnapshot `json:"learned,omitempty"`
}

// ExpectedDecision captures the expected outcome per case.
type ExpectedDecision struct {
	WinnerMode       string `json:"winner_mode"`
	WasOnlyOption    bool   `json:"was_only_option"`
	RenderedContains string `json:"rendered_contains,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToTripContext converts a fixture context into the domain TripContext,
// resolving the named city against the loaded profile set.
func (fc *FixtureContext) ToTripContext(cfg config.Config) (trip.TripContext, error) {
	intent, err := trip.ParseIntent(fc.Intent)
	if err != nil {
		return trip.TripContext{}, err
	}
	return trip.TripContext{
		Intent:         intent,
		Note:           fc.Note,
		PaceSlider:     fc.PaceSlider,
		BudgetSlider:   fc.BudgetSlider,
		UnfamiliarCity: fc.Unfamiliar,
		City:           cfg.Profile(fc.City),
		Weather:        fc.Weather,
		Time:           fc.Time,
		Learned:        fc.Learned,
	}, nil
}

// #endregion fixture-loader
