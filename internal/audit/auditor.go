package audit

// #region imports
import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
)

// #endregion

// #region thresholds

// CalmTransferLimit is the transfer count past which a "calm" archetype
// stops being an honest framing.
const CalmTransferLimit = 2

// #endregion thresholds

// #region check

// Check runs the fixed honesty invariants against one decision log and
// returns any findings. These guard against the explainer drifting out of
// sync with the scorer and selector: every emitted sentence must be backed
// by a field in the same record. Findings never block a recommendation.
func Check(log DecisionLog) []Violation {
	var out []Violation
	dc := log.Decision.Context

	// 1. Only-option decisions must not claim intent influence.
	if dc.WasOnlyOption && dc.IntentInfluence != "" {
		out = append(out, Violation{
			Rule:   RuleOnlyOptionIntent,
			Detail: "was_only_option with non-empty intent influence",
		})
	}

	// 2. A fallback path must not claim real candidates were compared.
	if log.Fallback && dc.ComparedAlternatives {
		out = append(out, Violation{
			Rule:   RuleFallbackCompared,
			Detail: "fallback decision claims alternatives were compared",
		})
	}

	// 3. Note influence requires at least one detected keyword tag.
	if dc.NoteInfluence != "" && len(log.Inputs.NoteTags) == 0 {
		out = append(out, Violation{
			Rule:   RuleNoteWithoutTags,
			Detail: "note influence claimed but no keyword tags were detected",
		})
	}

	// 4. Calm archetype is dishonest past the transfer limit.
	if dc.Archetype == scoring.DimCalm && log.Decision.WinnerTransfers > CalmTransferLimit {
		out = append(out, Violation{
			Rule:   RuleCalmOverTransfers,
			Detail: fmt.Sprintf("calm archetype with %d transfers", log.Decision.WinnerTransfers),
		})
	}

	return out
}

// #endregion check

// #region report

// Report logs each finding at Warn with structured fields. Offline review
// material only; callers must not branch on it.
func Report(logger *zap.Logger, log DecisionLog) {
	for _, v := range log.Violations {
		logger.Warn("honesty violation",
			zap.String("decision_id", log.ID),
			zap.String("rule", string(v.Rule)),
			zap.String("detail", v.Detail),
			zap.String("winner_mode", string(log.Decision.WinnerMode)),
		)
	}
}

// #endregion report
