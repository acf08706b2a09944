package controller

import (
	"time"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/service/analyzer"
	"quality-engine/src/service/complexity"
	"quality-engine/src/service/coverage"
	"quality-engine/src/service/duplication"
	"quality-engine/src/service/scoring"
	"quality-engine/src/util"
)

// Stage is a step of one report assembly
type Stage string

const (
	StageIdle        Stage = "idle"
	StageCollecting  Stage = "collecting"
	StageComplexity  Stage = "complexity"
	StageAggregating Stage = "aggregating"
	StageDone        Stage = "done"
)

// Engine assembles one Report per source file. It holds no mutable state
// between calls, performs no I/O and is safe for concurrent use.
type Engine struct {
	cfg         *config.Config
	runner      *analyzer.Runner
	calculator  *complexity.Calculator
	duplication duplication.Detector
	coverage    coverage.Summarizer
	aggregator  *scoring.Aggregator
	suggestions *scoring.SuggestionGenerator
	now         func() time.Time
	newID       func() string
}

// EngineOption customizes an Engine
type EngineOption func(*Engine)

// WithDuplicationDetector sets the duplication detector. The default never
// reports duplicates.
func WithDuplicationDetector(d duplication.Detector) EngineOption {
	return func(e *Engine) { e.duplication = d }
}

// WithCoverageSummarizer sets where coverage figures come from
func WithCoverageSummarizer(s coverage.Summarizer) EngineOption {
	return func(e *Engine) { e.coverage = s }
}

// WithClock sets the report timestamp source
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the run id source. Without one, single-file reports
// carry no run id.
func WithIDGenerator(newID func() string) EngineOption {
	return func(e *Engine) { e.newID = newID }
}

// NewEngine creates an engine from config
func NewEngine(cfg *config.Config, opts ...EngineOption) *Engine {
	e := &Engine{
		cfg:         cfg,
		runner:      analyzer.NewRunner(cfg),
		calculator:  complexity.NewCalculator(cfg.Complexity),
		duplication: duplication.NoopDetector{},
		aggregator:  scoring.NewAggregator(cfg.Scoring),
		suggestions: scoring.NewSuggestionGenerator(cfg.Scoring.SuggestionThreshold),
		now:         func() time.Time { return time.Now().UTC() },
	}
	if cfg.Coverage.Placeholder {
		e.coverage = coverage.PlaceholderSummarizer{}
	} else {
		e.coverage = coverage.NewPassThroughSummarizer(nil)
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeCode analyzes the text of one file. filePath is only echoed into
// the report.
func (e *Engine) AnalyzeCode(source, filePath string) model.Report {
	return e.Analyze(util.NewSource(filePath, source))
}

// Analyze runs every stage over a prepared source and returns the
// completed report
func (e *Engine) Analyze(src *util.Source) model.Report {
	startTime := time.Now()
	report := model.Report{
		File:      src.Path,
		Timestamp: e.now(),
	}
	if e.newID != nil {
		report.RunID = e.newID()
	}
	e.trace(src, StageIdle)

	e.trace(src, StageCollecting)
	result := e.runner.Run(src)
	report.Metrics = result.Scores
	report.Issues = result.Issues

	e.trace(src, StageComplexity)
	report.Complexity = e.calculator.Calculate(src)
	report.Duplications = e.duplication.Detect(src)
	report.Coverage = e.coverage.Summarize(src)

	e.trace(src, StageAggregating)
	report.Grade = e.aggregator.Aggregate(&report.Metrics)
	report.Suggestions = e.suggestions.Generate(report.Metrics)

	e.trace(src, StageDone)
	util.Debug("Report for %s: grade %s, overall %.1f, %d issues (took %v)",
		src.Path, report.Grade, report.Metrics.Overall, len(report.Issues), time.Since(startTime))
	return report
}

func (e *Engine) trace(src *util.Source, stage Stage) {
	util.Debug("Engine %s: %s", src.Path, stage)
}
