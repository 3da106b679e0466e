package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/audit"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/config"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/engine"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/replay"
)

// #endregion

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to decision fixture JSON")
	caseID := flag.String("case", "", "run a single case by id (default: all)")
	configPath := flag.String("config", "", "optional YAML config (profiles + tuning)")
	showLog := flag.Bool("log", false, "print the audit log entry for each decision")
	verbose := flag.Bool("verbose", false, "structured logging to stderr")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: decide --fixture path/to/cases.json [--case id] [--config engine.yaml] [--log] [--verbose]")
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	for _, c := range fixture.Cases {
		if *caseID != "" && c.CaseID != *caseID {
			continue
		}
		if err := runCase(c, cfg, logger, *showLog); err != nil {
			fmt.Fprintf(os.Stderr, "case %s: %v\n", c.CaseID, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// #endregion main

// #region run-case

type decisionOut struct {
	CaseID     string             `json:"case_id"`
	WinnerMode string             `json:"winner_mode"`
	Duration   float64            `json:"duration_minutes"`
	Archetype  string             `json:"archetype"`
	OnlyOption bool               `json:"was_only_option"`
	Rendered   string             `json:"explanation"`
	Log        *audit.DecisionLog `json:"log,omitempty"`
}

func runCase(c replay.FixtureCase, cfg config.Config, logger *zap.Logger, showLog bool) error {
	tripCtx, err := c.Context.ToTripContext(cfg)
	if err != nil {
		return err
	}

	ring := audit.NewRingLog(1)
	eng := engine.NewWithConfig(ring, logger, cfg.Scoring, cfg.Selection)

	decision, err := eng.Decide(tripCtx, c.Routes)
	if err != nil {
		return err
	}

	out := decisionOut{
		CaseID:     c.CaseID,
		WinnerMode: string(decision.Winner.Input.Mode),
		Duration:   decision.Winner.Input.DurationMinutes,
		Archetype:  string(decision.Winner.Archetype),
		OnlyOption: decision.Context.WasOnlyOption,
		Rendered:   decision.Rendered,
	}
	if showLog {
		if recent := ring.Recent(1); len(recent) > 0 {
			out.Log = &recent[0]
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion run-case
