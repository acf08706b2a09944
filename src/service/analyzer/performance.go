package analyzer

import (
	"fmt"
	"regexp"

	"quality-engine/src/config"
	"quality-engine/src/model"
)

var (
	inefficientLoopPattern = regexp.MustCompile(`\bfor\s*\(\s*(?:let|var|int|const)?\s*\w+\s*=\s*0\s*;\s*\w+\s*<=?\s*[\w$.\[\]]+\.(?:length|size\(\)|Count|Length)\b|\bfor\s+\w+\s*:=\s*0\s*;\s*\w+\s*<\s*len\(`)

	useStatePattern = regexp.MustCompile(`\buseState\s*\(`)
	setterPattern   = regexp.MustCompile(`\bset[A-Z][\w$]*\s*\(`)
)

// subscription pairs a resource acquisition with the call that releases it
type subscription struct {
	name    string
	acquire *regexp.Regexp
	release *regexp.Regexp
}

var subscriptions = []subscription{
	{"addEventListener", regexp.MustCompile(`\baddEventListener\s*\(`), regexp.MustCompile(`\bremoveEventListener\s*\(`)},
	{"subscribe", regexp.MustCompile(`\.subscribe\s*\(`), regexp.MustCompile(`\bunsubscribe\s*\(`)},
	{"setInterval", regexp.MustCompile(`\bsetInterval\s*\(`), regexp.MustCompile(`\bclearInterval\s*\(`)},
	{"on", regexp.MustCompile("\\.on\\s*\\(\\s*[\"'`]"), regexp.MustCompile(`\.(?:off|removeListener|removeAllListeners)\s*\(`)},
}

// PerformanceAnalyzer checks loops, listener leaks and render churn
type PerformanceAnalyzer struct {
	cfg config.PerformanceConfig
}

// NewPerformanceAnalyzer creates a new performance analyzer
func NewPerformanceAnalyzer(cfg config.PerformanceConfig) *PerformanceAnalyzer {
	return &PerformanceAnalyzer{cfg: cfg}
}

// Name returns the analyzer name
func (a *PerformanceAnalyzer) Name() string {
	return "performance"
}

// Dimension returns the scored dimension
func (a *PerformanceAnalyzer) Dimension() model.Dimension {
	return model.DimensionPerformance
}

// IsEnabled returns whether the analyzer is enabled
func (a *PerformanceAnalyzer) IsEnabled() bool {
	return a.cfg.Enabled
}

// Analyze runs all performance checks
func (a *PerformanceAnalyzer) Analyze(p *Pass) {
	for i, line := range p.Source.MaskedLines {
		for _, m := range inefficientLoopPattern.FindAllStringIndex(line, -1) {
			p.Report(RuleInefficientLoop, i+1, m[0]+1,
				"Loop re-evaluates its length bound on every iteration",
				a.cfg.InefficientLoopPenalty)
		}

		if useStatePattern.MatchString(line) {
			if m := setterPattern.FindStringIndex(line); m != nil {
				p.Report(RuleUnnecessaryRerender, i+1, m[0]+1,
					"State setter called alongside state declaration",
					a.cfg.RerenderPenalty)
			}
		}
	}

	text := p.Source.Masked
	for _, sub := range subscriptions {
		if sub.release.MatchString(text) {
			continue
		}
		for _, m := range sub.acquire.FindAllStringIndex(text, -1) {
			p.ReportAt(RuleNoListenerLeak, m[0],
				fmt.Sprintf("%s without matching cleanup", sub.name),
				a.cfg.ListenerLeakPenalty)
		}
	}
}
