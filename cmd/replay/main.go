package main

// #region imports
import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/route-advisor/go-engine/internal/config"
	"github.com/danielpatrickdp/route-advisor/go-engine/internal/replay"
)

// #endregion

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	configPath := flag.String("config", "", "optional YAML config (profiles + tuning)")
	verbose := flag.Bool("verbose", false, "print per-case detail, not just mismatches")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--config engine.yaml] [--verbose]")
		os.Exit(2)
	}

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

	summary := replay.Run(fixture, cfg, zap.NewNop())

	for _, r := range summary.Results {
		switch {
		case r.Err != nil:
			fmt.Printf("ERR   %-24s %v\n", r.CaseID, r.Err)
		case !r.Match:
			fmt.Printf("DRIFT %-24s %s\n", r.CaseID, r.Mismatch)
		case *verbose:
			fmt.Printf("OK    %-24s winner=%s only_option=%t\n", r.CaseID, r.WinnerMode, r.OnlyOption)
		}
		if *verbose {
			for _, v := range r.Violations {
				fmt.Printf("      honesty: %s (%s)\n", v.Rule, v.Detail)
			}
		}
	}

	fmt.Printf("\n%d cases: %d ok, %d drifted, %d errors, %d honesty findings\n",
		summary.TotalCases, summary.Matches, summary.Mismatches, summary.Errors, summary.Violations)

	if summary.Mismatches > 0 || summary.Errors > 0 {
		os.Exit(1)
	}
}

// #endregion main
