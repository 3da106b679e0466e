package explain

// #region imports
import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/selector"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/weights"
)

// #endregion

// #region decision-context

// DecisionContext is the structured justification for a selection. Every
// sentence rendered from it is literally backed by a field in the same
// decision record.
type DecisionContext struct {
	Archetype            scoring.Dimension `json:"archetype"`
	PrimaryReason        string            `json:"primary_reason"`
	SecondaryReasons     []string          `json:"secondary_reasons,omitempty"`
	TradeOffs            []string          `json:"trade_offs,omitempty"`
	WasOnlyOption        bool              `json:"was_only_option"`
	ComparedAlternatives bool              `json:"compared_alternatives"`
	IntentInfluence      string            `json:"intent_influence,omitempty"`
	NoteInfluence        string            `json:"note_influence,omitempty"`
}

// #endregion decision-context

// #region influence-tables

// intentInfluences is the fixed per-intent phrasing, used only when the
// intent's top-weighted dimension matches the winner's archetype.
var intentInfluences = map[trip.Intent]string{
	trip.IntentWork:    "Since this is a work trip, arrival time weighed heaviest.",
	trip.IntentLeisure: "Since you're out exploring, the least hectic option won out.",
	trip.IntentErrand:  "For a quick errand, getting there without fuss weighed heaviest.",
	trip.IntentDate:    "For the occasion, comfort weighed heavier than speed.",
	trip.IntentFlight:  "With a departure to catch, arrival time weighed heaviest.",
}

// noteInfluences keys phrasing by the first detected note tag.
var noteInfluences = map[note.Tag]string{
	note.TagWalkDesire:  "Your note about wanting to walk nudged the choice.",
	note.TagDate:        "Your note about the occasion nudged this toward comfort.",
	note.TagMeeting:     "Your note about the meeting added an arrival buffer.",
	note.TagFatigue:     "Your note about being worn out steered this away from walking.",
	note.TagReservation: "Your reservation added an arrival buffer to the pick.",
	note.TagFamily:      "Traveling with family steered this toward the easier option.",
	note.TagUrgency:     "Your note about being in a hurry pushed speed up the list.",
}

// #endregion influence-tables

// #region build

// Build synthesizes a DecisionContext from the selection result. The
// only-option path derives its reason purely from the winner's metrics and
// never claims intent or note influence.
func Build(res selector.Result, ctx trip.TripContext, w weights.Vector, mods note.Modifiers) DecisionContext {
	winner := res.Winner.Candidate

	if res.WasOnlyOption {
		return DecisionContext{
			Archetype:     winner.Archetype,
			PrimaryReason: onlyOptionReason(winner, res.ExcludedModes),
			WasOnlyOption: true,
		}
	}

	dc := DecisionContext{
		Archetype:            winner.Archetype,
		PrimaryReason:        primaryReason(winner),
		SecondaryReasons:     secondaryReasons(winner, ctx, mods),
		ComparedAlternatives: true,
	}

	if t := tradeOff(res); t != "" {
		dc.TradeOffs = append(dc.TradeOffs, t)
	}

	// Intent framing only when the intent's heaviest dimension actually
	// matches what won.
	if weights.BaseFor(ctx.Intent).Top() == winner.Archetype {
		dc.IntentInfluence = intentInfluences[ctx.Intent]
	}

	// Note framing only when a keyword tag was actually detected.
	if len(mods.Tags) > 0 {
		if phrase, ok := noteInfluences[mods.Tags[0]]; ok {
			dc.NoteInfluence = phrase
		}
	}

	return dc
}

// #endregion build

// #region primary-reasons

func primaryReason(c scoring.ScoredCandidate) string {
	switch c.Archetype {
	case scoring.DimCalm:
		if c.Metrics.Transfers == 0 {
			return "This is a direct route with no transfers."
		}
		return fmt.Sprintf("This is the calmest option, with only %s.", transferPhrase(c.Metrics.Transfers))
	case scoring.DimFast:
		return fmt.Sprintf("This is the fastest way there, about %.0f minutes door to door.", c.Input.DurationMinutes)
	case scoring.DimComfort:
		return fmt.Sprintf("This is the most comfortable option, with only %.0f minutes outside.", c.Metrics.WalkMinutes)
	}
	return "This route scored best overall."
}

func onlyOptionReason(c scoring.ScoredCandidate, excluded []trip.Mode) string {
	base := "This was the only route available"
	if len(excluded) > 0 {
		base = "This was the only route left within budget"
	}
	if c.Metrics.Transfers == 0 {
		return base + ": a direct trip with no transfers."
	}
	return fmt.Sprintf("%s: about %.0f minutes with %s.", base, c.Input.DurationMinutes, transferPhrase(c.Metrics.Transfers))
}

func transferPhrase(n int) string {
	if n == 1 {
		return "one transfer"
	}
	return fmt.Sprintf("%d transfers", n)
}

// #endregion primary-reasons

// #region secondary-reasons

// secondaryReasons adds framings whose trigger condition literally holds
// for the measured metrics. Nothing speculative.
func secondaryReasons(c scoring.ScoredCandidate, ctx trip.TripContext, mods note.Modifiers) []string {
	var out []string

	if !ctx.Weather.OutdoorFriendly && c.Metrics.WalkMinutes < 10 {
		out = append(out, "It keeps you mostly out of the weather, with under 10 minutes on foot.")
	}
	if c.Metrics.Transfers == 0 && c.Archetype != scoring.DimCalm {
		out = append(out, "No transfers along the way.")
	}
	if mods.BufferMinutes > 0 {
		out = append(out, fmt.Sprintf("It leaves roughly a %d-minute buffer before you need to be there.", mods.BufferMinutes))
	}
	if ctx.Time.IsLateNight && c.Input.Mode.Motorized() {
		out = append(out, "At this hour it avoids waiting on thinned-out service.")
	}

	return out
}

// #endregion secondary-reasons

// #region trade-off

// tradeOff states what was given up, only when a meaningfully faster
// runner-up was passed over.
func tradeOff(res selector.Result) string {
	if res.RunnerUp == nil {
		return ""
	}
	winner := res.Winner.Candidate.Input
	runner := res.RunnerUp.Candidate.Input
	saved := winner.DurationMinutes - runner.DurationMinutes
	if saved > 5 {
		return fmt.Sprintf("A %s option was about %.0f minutes faster, but scored lower on what matters for this trip.",
			string(runner.Mode), saved)
	}
	return ""
}

// #endregion trade-off

// #region render

// Render concatenates primary + first secondary + (note influence, else
// intent influence). The only-option path renders just its honest sentence.
func Render(dc DecisionContext) string {
	if dc.WasOnlyOption {
		return dc.PrimaryReason
	}

	parts := []string{dc.PrimaryReason}
	if len(dc.SecondaryReasons) > 0 {
		parts = append(parts, dc.SecondaryReasons[0])
	}
	if dc.NoteInfluence != "" {
		parts = append(parts, dc.NoteInfluence)
	} else if dc.IntentInfluence != "" {
		parts = append(parts, dc.IntentInfluence)
	}
	return strings.Join(parts, " ")
}

// #endregion render
