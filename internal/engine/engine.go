package engine

// #region imports
import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/audit"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/explain"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/note"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/scoring"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/selector"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/trip"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/weights"
)

// #endregion

// #region decision

// Decision is what the caller merges into the user-facing payload: exactly
// one candidate plus its literal justification.
type Decision struct {
	Winner     scoring.ScoredCandidate
	FinalScore float64
	Context    explain.DecisionContext
	Rendered   string
	LogID      string
}

// #endregion decision

// #region engine-struct

// Engine is the top-level coordinator: interpret → score → compose → select
// → explain → record. All stages are synchronous, pure, in-memory; the only
// shared state is the injected ring log.
type Engine struct {
	scoringCfg  scoring.Config
	selectorCfg selector.Config
	ring        *audit.RingLog
	logger      *zap.Logger
}

// New creates an engine around a host-owned ring log. A nil logger is
// replaced with a nop logger.
func New(ring *audit.RingLog, logger *zap.Logger) *Engine {
	return NewWithConfig(ring, logger, scoring.DefaultConfig(), selector.DefaultConfig())
}

// NewWithConfig creates an engine with explicit tuning constants.
func NewWithConfig(ring *audit.RingLog, logger *zap.Logger, sc scoring.Config, sel selector.Config) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ring == nil {
		ring = audit.NewRingLog(0)
	}
	return &Engine{
		scoringCfg:  sc,
		selectorCfg: sel,
		ring:        ring,
		logger:      logger,
	}
}

// Recent exposes the most recent decision logs for operator debugging.
func (e *Engine) Recent(n int) []audit.DecisionLog {
	return e.ring.Recent(n)
}

// #endregion engine-struct

// #region decide

// Decide selects exactly one route for the trip. Zero candidates is fatal
// (selector.ErrEmptyCandidateSet); an unknown intent is a caller contract
// violation and is rejected before any scoring.
func (e *Engine) Decide(ctx trip.TripContext, routes []trip.RouteInput) (Decision, error) {
	if _, err := trip.ParseIntent(string(ctx.Intent)); err != nil {
		return Decision{}, fmt.Errorf("validate context: %w", err)
	}

	mods := note.Interpret(ctx.Note)
	cands := scoring.ScoreAll(routes, ctx, e.scoringCfg)
	w := weights.Compose(ctx, mods)

	res, err := selector.Select(cands, ctx, w, mods, e.selectorCfg)
	if err != nil {
		return Decision{}, err
	}

	dc := explain.Build(res, ctx, w, mods)
	rendered := explain.Render(dc)

	entry := e.record(ctx, mods, w, res, dc, rendered, false)

	return Decision{
		Winner:     res.Winner.Candidate,
		FinalScore: res.Winner.FinalScore,
		Context:    dc,
		Rendered:   rendered,
		LogID:      entry.ID,
	}, nil
}

// #endregion decide

// #region decide-fallback

// DecideFallback handles the degraded path where the provider produced
// nothing usable and the host synthesized a single stand-in route. The
// decision is framed strictly as an only-option pick and the log entry is
// marked so the auditor can hold it to the fallback invariants.
func (e *Engine) DecideFallback(ctx trip.TripContext, route trip.RouteInput) (Decision, error) {
	if _, err := trip.ParseIntent(string(ctx.Intent)); err != nil {
		return Decision{}, fmt.Errorf("validate context: %w", err)
	}

	mods := note.Interpret(ctx.Note)
	cand := scoring.ScoreCandidate(route, ctx, e.scoringCfg)
	w := weights.Compose(ctx, mods)

	res := selector.Result{
		Winner:        selector.Ranked{Candidate: cand, FinalScore: w.Dot(cand)},
		Ranking:       []selector.Ranked{{Candidate: cand, FinalScore: w.Dot(cand)}},
		WasOnlyOption: true,
	}

	dc := explain.Build(res, ctx, w, mods)
	rendered := explain.Render(dc)

	entry := e.record(ctx, mods, w, res, dc, rendered, true)

	return Decision{
		Winner:     cand,
		FinalScore: res.Winner.FinalScore,
		Context:    dc,
		Rendered:   rendered,
		LogID:      entry.ID,
	}, nil
}

// #endregion decide-fallback

// #region record

// record assembles the audit entry, runs the honesty checks, appends to the
// ring, and reports findings. Violations are informational; they never block
// or alter the returned decision.
func (e *Engine) record(
	ctx trip.TripContext,
	mods note.Modifiers,
	w weights.Vector,
	res selector.Result,
	dc explain.DecisionContext,
	rendered string,
	fallback bool,
) audit.DecisionLog {
	entry := audit.DecisionLog{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Inputs: audit.InputRecord{
			Intent:       ctx.Intent,
			NotePresent:  ctx.Note != "",
			NoteTags:     mods.Tags,
			PaceSlider:   ctx.PaceSlider,
			BudgetSlider: ctx.BudgetSlider,
			Unfamiliar:   ctx.UnfamiliarCity,
			City:         ctx.City.Name,
			IsNight:      ctx.Time.IsNight,
			IsLateNight:  ctx.Time.IsLateNight,
			IsRushHour:   ctx.Time.IsRushHour,
			HasLearned:   ctx.Learned != nil,
		},
		Constraints: audit.ConstraintRecord{
			Weights:       w,
			ExcludedModes: res.ExcludedModes,
		},
		Candidates: candidateRecords(res.Ranking),
		Decision: audit.DecisionRecord{
			WinnerMode:      res.Winner.Candidate.Input.Mode,
			Archetype:       res.Winner.Candidate.Archetype,
			WinnerTransfers: res.Winner.Candidate.Metrics.Transfers,
			Context:         dc,
			Rendered:        rendered,
		},
		Fallback: fallback,
	}

	entry.Violations = audit.Check(entry)
	e.ring.Append(entry)
	audit.Report(e.logger, entry)

	e.logger.Info("route decided",
		zap.String("decision_id", entry.ID),
		zap.String("intent", string(ctx.Intent)),
		zap.String("winner_mode", string(entry.Decision.WinnerMode)),
		zap.String("archetype", string(entry.Decision.Archetype)),
		zap.Bool("only_option", dc.WasOnlyOption),
		zap.Int("candidates", len(res.Ranking)),
		zap.Int("violations", len(entry.Violations)),
	)

	return entry
}

func candidateRecords(ranking []selector.Ranked) []audit.CandidateRecord {
	out := make([]audit.CandidateRecord, 0, len(ranking))
	for _, r := range ranking {
		c := r.Candidate
		out = append(out, audit.CandidateRecord{
			Mode:            c.Input.Mode,
			DurationMinutes: c.Input.DurationMinutes,
			WalkMinutes:     c.Metrics.WalkMinutes,
			Transfers:       c.Metrics.Transfers,
			Complex:         c.Metrics.ComplexInterchange,
			Exposed:         c.Metrics.WeatherExposed,
			Calm:            c.Calm,
			Fast:            c.Fast,
			Comfort:         c.Comfort,
			Archetype:       c.Archetype,
			FinalScore:      r.FinalScore,
			Penalty:         r.Penalty,
		})
	}
	return out
}

// #endregion record
