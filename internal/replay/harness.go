package replay

// #region imports
import (
	"strings"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/audit"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/config"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/engine"
)

// #endregion

// #region types

// CaseResult captures the outcome of replaying one fixture case.
type CaseResult struct {
	CaseID     string
	Match      bool
	Mismatch   string // empty when Match
	WinnerMode string
	OnlyOption bool
	Rendered   string
	Violations []audit.Violation
	Err        error
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalCases int
	Matches    int
	Mismatches int
	Errors     int
	Violations int
	Results    []CaseResult
}

// #endregion types

// #region harness

// Run replays every case in the fixture through a fresh engine and compares
// the decision against the recorded expectation. The engine is deterministic,
// so any drift means the pipeline changed since the fixture was captured.
func Run(f *Fixture, cfg config.Config, logger *zap.Logger) Summary {
	if logger == nil {
		logger = zap.NewNop()
	}

	summary := Summary{TotalCases: len(f.Cases)}
	for _, c := range f.Cases {
		res := runCase(c, cfg, logger)
		switch {
		case res.Err != nil:
			summary.Errors++
		case res.Match:
			summary.Matches++
		default:
			summary.Mismatches++
		}
		summary.Violations += len(res.Violations)
		summary.Results = append(summary.Results, res)
	}
	return summary
}

func runCase(c FixtureCase, cfg config.Config, logger *zap.Logger) CaseResult {
	res := CaseResult{CaseID: c.CaseID}

	tripCtx, err := c.Context.ToTripContext(cfg)
	if err != nil {
		res.Err = err
		return res
	}

	ring := audit.NewRingLog(1)
	eng := engine.NewWithConfig(ring, logger, cfg.Scoring, cfg.Selection)

	decision, err := eng.Decide(tripCtx, c.Routes)
	if err != nil {
		res.Err = err
		return res
	}

	res.WinnerMode = string(decision.Winner.Input.Mode)
	res.OnlyOption = decision.Context.WasOnlyOption
	res.Rendered = decision.Rendered
	for _, entry := range ring.Recent(1) {
		res.Violations = append(res.Violations, entry.Violations...)
	}

	res.Match, res.Mismatch = compare(c.Expected, res)
	return res
}

// #endregion harness

// #region compare

func compare(want ExpectedDecision, got CaseResult) (bool, string) {
	if want.WinnerMode != "" && want.WinnerMode != got.WinnerMode {
		return false, "winner mode: want " + want.WinnerMode + ", got " + got.WinnerMode
	}
	if want.WasOnlyOption != got.OnlyOption {
		return false, "was_only_option drifted"
	}
	if want.RenderedContains != "" && !strings.Contains(got.Rendered, want.RenderedContains) {
		return false, "rendered text missing " + want.RenderedContains
	}
	return true, ""
}

// #endregion compare
