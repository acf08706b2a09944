package analyzer

import (
	"time"

	"golang.org/x/sync/errgroup"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

// Result holds the dimension scores and issues of one file. Overall is left
// for the scoring aggregator.
type Result struct {
	Scores model.Metrics
	Issues []model.Issue
}

// Runner manages and runs the dimension analyzers.
// Analyzers may run concurrently, but results are always merged in
// dimension order so output does not depend on scheduling.
type Runner struct {
	analyzers []Analyzer
	cfg       *config.Config
}

// NewRunner creates a runner with all five analyzers registered
func NewRunner(cfg *config.Config) *Runner {
	analyzers := []Analyzer{
		NewMaintainabilityAnalyzer(cfg.Analyzers.Maintainability),
		NewReliabilityAnalyzer(cfg.Analyzers.Reliability),
		NewSecurityAnalyzer(cfg.Analyzers.Security),
		NewPerformanceAnalyzer(cfg.Analyzers.Performance),
		NewAccessibilityAnalyzer(cfg.Analyzers.Accessibility),
	}

	util.Debug("Analyzer runner initialized with %d analyzers", len(analyzers))
	for _, a := range analyzers {
		status := "disabled"
		if a.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", a.Name(), status)
	}

	return &Runner{
		analyzers: analyzers,
		cfg:       cfg,
	}
}

// Run analyzes one source. A disabled analyzer leaves its dimension at 100.
func (r *Runner) Run(src *util.Source) Result {
	return r.run(src, r.cfg.Concurrency.ParallelAnalyzers)
}

func (r *Runner) run(src *util.Source, parallel bool) Result {
	startTime := time.Now()

	passes := make([]*Pass, len(r.analyzers))
	for i, a := range r.analyzers {
		passes[i] = newPass(src, a.Dimension(), r.cfg.IsRuleDisabled)
	}

	if parallel {
		var g errgroup.Group
		for i, a := range r.analyzers {
			if !a.IsEnabled() {
				continue
			}
			g.Go(func() error {
				a.Analyze(passes[i])
				return nil
			})
		}
		_ = g.Wait() // analyzers never fail
	} else {
		for i, a := range r.analyzers {
			if a.IsEnabled() {
				a.Analyze(passes[i])
			}
		}
	}

	result := Result{Issues: []model.Issue{}}
	for i, a := range r.analyzers {
		result.Scores.SetScore(a.Dimension(), passes[i].Score())
		result.Issues = append(result.Issues, passes[i].Issues()...)
	}

	util.Debug("Analyzed %s: %d issues (took %v)", src.Path, len(result.Issues), time.Since(startTime))
	return result
}

// Analyzers returns the registered analyzers in dimension order
func (r *Runner) Analyzers() []Analyzer {
	return r.analyzers
}
