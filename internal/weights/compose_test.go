package weights

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
)

const tolerance = 1e-9

func checkNormalized(t *testing.T, v Vector) {
	t.Helper()
	sum := v.Calm + v.Fast + v.Comfort
	if math.Abs(sum-1) > tolerance {
		t.Fatalf("weights must sum to 1, got %f (%+v)", sum, v)
	}
	if v.Calm < 0 || v.Fast < 0 || v.Comfort < 0 {
		t.Fatalf("weights must be non-negative: %+v", v)
	}
}

func TestBaseWeightsNormalized(t *testing.T) {
	for _, intent := range []trip.Intent{trip.IntentWork, trip.IntentLeisure, trip.IntentErrand, trip.IntentDate, trip.IntentFlight} {
		checkNormalized(t, BaseFor(intent).normalize())
	}
}

func TestComposeAlwaysNormalized(t *testing.T) {
	intents := []trip.Intent{trip.IntentWork, trip.IntentLeisure, trip.IntentErrand, trip.IntentDate, trip.IntentFlight}
	sliders := []int{0, 10, 50, 90, 100}
	mods := []note.Modifiers{
		{},
		{ComfortBonus: 1, RushPenalty: 1, WalkingPenalty: 1},
	}

	for _, intent := range intents {
		for _, pace := range sliders {
			for _, budget := range sliders {
				for _, m := range mods {
					ctx := trip.TripContext{
						Intent:         intent,
						PaceSlider:     pace,
						BudgetSlider:   budget,
						UnfamiliarCity: pace%2 == 0,
						Learned:        &trip.PreferenceSnapshot{CalmVsFast: 0.5, ComfortVsEconomy: -0.5, MaxTransfers: -1},
					}
					checkNormalized(t, Compose(ctx, m))
				}
			}
		}
	}
}

func TestWorkWeighsFastHighest(t *testing.T) {
	if BaseFor(trip.IntentWork).Top() != "fast" {
		t.Fatal("work intent must weight fast highest")
	}
	if BaseFor(trip.IntentFlight).Top() != "fast" {
		t.Fatal("flight intent must weight fast highest")
	}
}

func TestLeisureWeighsCalmHighest(t *testing.T) {
	if BaseFor(trip.IntentLeisure).Top() != "calm" {
		t.Fatal("leisure intent must weight calm highest")
	}
}

func TestPaceSliderShiftsCalmFast(t *testing.T) {
	base := trip.TripContext{Intent: trip.IntentErrand, PaceSlider: 50, BudgetSlider: 50}
	fast := base
	fast.PaceSlider = 100
	calm := base
	calm.PaceSlider = 0

	mid := Compose(base, note.Modifiers{})
	fastV := Compose(fast, note.Modifiers{})
	calmV := Compose(calm, note.Modifiers{})

	if fastV.Fast <= mid.Fast {
		t.Fatalf("pace 100 should raise fast weight: mid=%f fast=%f", mid.Fast, fastV.Fast)
	}
	if calmV.Calm <= mid.Calm {
		t.Fatalf("pace 0 should raise calm weight: mid=%f calm=%f", mid.Calm, calmV.Calm)
	}
}

func TestUnfamiliarCityBumpsCalm(t *testing.T) {
	familiar := trip.TripContext{Intent: trip.IntentErrand, PaceSlider: 50, BudgetSlider: 50}
	unfamiliar := familiar
	unfamiliar.UnfamiliarCity = true

	if Compose(unfamiliar, note.Modifiers{}).Calm <= Compose(familiar, note.Modifiers{}).Calm {
		t.Fatal("unfamiliar city should raise calm weight")
	}
}

func TestLearnedNudgeIsCapped(t *testing.T) {
	ctx := trip.TripContext{Intent: trip.IntentErrand, PaceSlider: 50, BudgetSlider: 50}
	wild := ctx
	wild.Learned = &trip.PreferenceSnapshot{CalmVsFast: 10, ComfortVsEconomy: 10, MaxTransfers: -1}
	capped := ctx
	capped.Learned = &trip.PreferenceSnapshot{CalmVsFast: 0.15, ComfortVsEconomy: 0.15, MaxTransfers: -1}

	a := Compose(wild, note.Modifiers{})
	b := Compose(capped, note.Modifiers{})
	if math.Abs(a.Calm-b.Calm) > tolerance || math.Abs(a.Comfort-b.Comfort) > tolerance {
		t.Fatalf("learned nudges past the cap must behave like the cap: %+v vs %+v", a, b)
	}
}

func TestNoteComfortBonusRaisesComfort(t *testing.T) {
	ctx := trip.TripContext{Intent: trip.IntentErrand, PaceSlider: 50, BudgetSlider: 50}
	plain := Compose(ctx, note.Modifiers{})
	comfy := Compose(ctx, note.Modifiers{ComfortBonus: 1})
	if comfy.Comfort <= plain.Comfort {
		t.Fatalf("comfort bonus should raise comfort weight: %f vs %f", plain.Comfort, comfy.Comfort)
	}
}
