package analyzer

import (
	"fmt"

	"quality-engine/src/model"
	"quality-engine/src/util"
)

// Analyzer scores one quality dimension of a source file
type Analyzer interface {
	// Name returns the analyzer name
	Name() string

	// Dimension returns the dimension this analyzer scores
	Dimension() model.Dimension

	// IsEnabled returns whether the analyzer is enabled
	IsEnabled() bool

	// Analyze inspects the pass source and reports issues on the pass
	Analyze(p *Pass)
}

// Pass is the scratch state of one analyzer over one file. Each analyzer
// gets its own pass so analyzers can run concurrently.
type Pass struct {
	Source *util.Source

	dimension model.Dimension
	score     float64
	issues    []model.Issue
	counters  map[string]int
	disabled  func(ruleID string) bool
}

func newPass(src *util.Source, dim model.Dimension, disabled func(string) bool) *Pass {
	if disabled == nil {
		disabled = func(string) bool { return false }
	}
	return &Pass{
		Source:    src,
		dimension: dim,
		score:     100,
		counters:  make(map[string]int),
		disabled:  disabled,
	}
}

// Report records an issue at a line and column and deducts the penalty.
// Reports for disabled rules are dropped without a deduction.
func (p *Pass) Report(rule Rule, line, column int, message string, penalty float64) {
	if p.disabled(rule.ID) {
		return
	}

	index := p.counters[rule.ID]
	p.counters[rule.ID]++

	p.issues = append(p.issues, model.Issue{
		ID:        fmt.Sprintf("%s-%d", rule.IDPrefix, index),
		Type:      rule.Type,
		Severity:  rule.Severity,
		Dimension: p.dimension,
		File:      p.Source.Path,
		Line:      line,
		Column:    column,
		Message:   message,
		Rule:      rule.ID,
		Fix:       rule.Fix,
		Impact:    rule.Impact,
		Effort:    rule.Effort,
	})
	p.score -= penalty
}

// ReportAt records an issue at a byte offset of the source text
func (p *Pass) ReportAt(rule Rule, offset int, message string, penalty float64) {
	line, column := p.Source.Position(offset)
	p.Report(rule, line, column, message, penalty)
}

// Score returns the dimension score clamped to [0, 100]
func (p *Pass) Score() float64 {
	switch {
	case p.score < 0:
		return 0
	case p.score > 100:
		return 100
	}
	return p.score
}

// Issues returns the issues reported so far
func (p *Pass) Issues() []model.Issue {
	return p.issues
}
