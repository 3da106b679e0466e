package explain

import (
	"strings"
	"testing"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/selector"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/weights"
)

func calmCandidate(duration float64, transfers int) scoring.ScoredCandidate {
	return scoring.ScoredCandidate{
		Input:     trip.RouteInput{Mode: trip.ModeTransit, DurationMinutes: duration},
		Metrics:   scoring.Metrics{Transfers: transfers},
		Archetype: scoring.DimCalm,
	}
}

func friendlyContext(intent trip.Intent) trip.TripContext {
	return trip.TripContext{
		Intent:  intent,
		City:    trip.DefaultCityProfile("testville"),
		Weather: trip.WeatherSnapshot{OutdoorFriendly: true, TempC: 18},
	}
}

func TestOnlyOptionUsesMetricsOnly(t *testing.T) {
	res := selector.Result{
		Winner:        selector.Ranked{Candidate: calmCandidate(30, 0)},
		WasOnlyOption: true,
	}
	dc := Build(res, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), note.Modifiers{})
	if !dc.WasOnlyOption {
		t.Fatal("WasOnlyOption must carry through")
	}
	if dc.IntentInfluence != "" || dc.NoteInfluence != "" {
		t.Fatal("only-option decisions must not claim intent or note influence")
	}
	if !strings.Contains(dc.PrimaryReason, "only route available") {
		t.Fatalf("wrong only-option framing: %q", dc.PrimaryReason)
	}
	if !strings.Contains(dc.PrimaryReason, "direct trip with no transfers") {
		t.Fatalf("zero transfers should read as direct: %q", dc.PrimaryReason)
	}
	if got := Render(dc); got != dc.PrimaryReason {
		t.Fatalf("only-option render must be just the primary reason, got %q", got)
	}
}

func TestOnlyOptionAfterBudgetFilter(t *testing.T) {
	res := selector.Result{
		Winner:        selector.Ranked{Candidate: calmCandidate(35, 1)},
		WasOnlyOption: true,
		ExcludedModes: []trip.Mode{trip.ModeDriving},
	}
	dc := Build(res, friendlyContext(trip.IntentErrand), weights.BaseFor(trip.IntentErrand), note.Modifiers{})
	if !strings.Contains(dc.PrimaryReason, "within budget") {
		t.Fatalf("budget-filtered singleton should mention budget: %q", dc.PrimaryReason)
	}
}

func TestIntentInfluenceRequiresArchetypeMatch(t *testing.T) {
	winner := calmCandidate(30, 0)
	runner := calmCandidate(32, 1)
	res := selector.Result{
		Winner:   selector.Ranked{Candidate: winner},
		RunnerUp: &selector.Ranked{Candidate: runner},
		Ranking:  []selector.Ranked{{Candidate: winner}, {Candidate: runner}},
	}

	// Leisure weighs calm heaviest, so a calm winner earns the framing.
	dc := Build(res, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), note.Modifiers{})
	if dc.IntentInfluence == "" {
		t.Fatal("calm winner under leisure should carry the intent framing")
	}

	// Work weighs fast heaviest; a calm winner must not claim it.
	dc = Build(res, friendlyContext(trip.IntentWork), weights.BaseFor(trip.IntentWork), note.Modifiers{})
	if dc.IntentInfluence != "" {
		t.Fatalf("calm winner under work must not claim intent influence: %q", dc.IntentInfluence)
	}
}

func TestNoteInfluenceRequiresDetectedTag(t *testing.T) {
	winner := calmCandidate(30, 0)
	res := selector.Result{
		Winner:   selector.Ranked{Candidate: winner},
		RunnerUp: &selector.Ranked{Candidate: calmCandidate(33, 1)},
	}

	dc := Build(res, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), note.Modifiers{})
	if dc.NoteInfluence != "" {
		t.Fatal("no detected tags, no note influence")
	}

	mods := note.Modifiers{WalkingPenalty: 0.7, Tags: []note.Tag{note.TagFatigue}}
	dc = Build(res, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), mods)
	if !strings.Contains(dc.NoteInfluence, "worn out") {
		t.Fatalf("fatigue tag should produce its framing, got %q", dc.NoteInfluence)
	}
	// Note influence wins over intent influence at render time.
	if r := Render(dc); !strings.Contains(r, "worn out") {
		t.Fatalf("render should include the note framing: %q", r)
	}
}

func TestTradeOffOnlyWhenMeaningfullyFaster(t *testing.T) {
	winner := calmCandidate(40, 0)
	fast := scoring.ScoredCandidate{
		Input:     trip.RouteInput{Mode: trip.ModeDriving, DurationMinutes: 25},
		Archetype: scoring.DimFast,
	}
	res := selector.Result{
		Winner:   selector.Ranked{Candidate: winner},
		RunnerUp: &selector.Ranked{Candidate: fast},
	}
	dc := Build(res, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), note.Modifiers{})
	if len(dc.TradeOffs) != 1 {
		t.Fatalf("15-minute gap should surface a trade-off, got %v", dc.TradeOffs)
	}
	if !strings.Contains(dc.TradeOffs[0], "15 minutes faster") {
		t.Fatalf("trade-off should state the time saved: %q", dc.TradeOffs[0])
	}

	// A 3-minute gap is noise, not a trade-off.
	res.RunnerUp.Candidate.Input.DurationMinutes = 37
	dc = Build(res, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), note.Modifiers{})
	if len(dc.TradeOffs) != 0 {
		t.Fatalf("small gap should not surface a trade-off: %v", dc.TradeOffs)
	}
}

func TestWeatherSecondaryReason(t *testing.T) {
	ctx := friendlyContext(trip.IntentErrand)
	ctx.Weather.OutdoorFriendly = false

	winner := scoring.ScoredCandidate{
		Input:     trip.RouteInput{Mode: trip.ModeTransit, DurationMinutes: 30},
		Metrics:   scoring.Metrics{WalkMinutes: 4, Transfers: 1},
		Archetype: scoring.DimComfort,
	}
	res := selector.Result{
		Winner:   selector.Ranked{Candidate: winner},
		RunnerUp: &selector.Ranked{Candidate: calmCandidate(32, 0)},
	}
	dc := Build(res, ctx, weights.BaseFor(trip.IntentErrand), note.Modifiers{})
	found := false
	for _, s := range dc.SecondaryReasons {
		if strings.Contains(s, "out of the weather") {
			found = true
		}
	}
	if !found {
		t.Fatalf("wet weather plus a short walk should add the shelter framing: %v", dc.SecondaryReasons)
	}
}

func TestZeroTransferSecondaryForNonCalmWinner(t *testing.T) {
	winner := scoring.ScoredCandidate{
		Input:     trip.RouteInput{Mode: trip.ModeDriving, DurationMinutes: 20},
		Metrics:   scoring.Metrics{Transfers: 0},
		Archetype: scoring.DimFast,
	}
	res := selector.Result{
		Winner:   selector.Ranked{Candidate: winner},
		RunnerUp: &selector.Ranked{Candidate: calmCandidate(30, 1)},
	}
	dc := Build(res, friendlyContext(trip.IntentWork), weights.BaseFor(trip.IntentWork), note.Modifiers{})
	found := false
	for _, s := range dc.SecondaryReasons {
		if s == "No transfers along the way." {
			found = true
		}
	}
	if !found {
		t.Fatalf("fast winner with zero transfers should mention it: %v", dc.SecondaryReasons)
	}
	// The calm primary already covers directness; no duplicate for calm winners.
	dcCalm := Build(selector.Result{
		Winner:   selector.Ranked{Candidate: calmCandidate(30, 0)},
		RunnerUp: &selector.Ranked{Candidate: winner},
	}, friendlyContext(trip.IntentLeisure), weights.BaseFor(trip.IntentLeisure), note.Modifiers{})
	for _, s := range dcCalm.SecondaryReasons {
		if s == "No transfers along the way." {
			t.Fatal("calm winner must not repeat the no-transfer line")
		}
	}
}
