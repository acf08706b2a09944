package model

import "time"

// Metrics holds the five dimension scores and their derived overall score.
// Every value lies in [0, 100].
type Metrics struct {
	Maintainability float64 `json:"maintainability"`
	Reliability     float64 `json:"reliability"`
	Security        float64 `json:"security"`
	Performance     float64 `json:"performance"`
	Accessibility   float64 `json:"accessibility"`
	Overall         float64 `json:"overall"`
}

// Score returns the score of a single dimension
func (m Metrics) Score(d Dimension) float64 {
	switch d {
	case DimensionMaintainability:
		return m.Maintainability
	case DimensionReliability:
		return m.Reliability
	case DimensionSecurity:
		return m.Security
	case DimensionPerformance:
		return m.Performance
	case DimensionAccessibility:
		return m.Accessibility
	}
	return 0
}

// SetScore sets the score of a single dimension
func (m *Metrics) SetScore(d Dimension, score float64) {
	switch d {
	case DimensionMaintainability:
		m.Maintainability = score
	case DimensionReliability:
		m.Reliability = score
	case DimensionSecurity:
		m.Security = score
	case DimensionPerformance:
		m.Performance = score
	case DimensionAccessibility:
		m.Accessibility = score
	}
}

// HalsteadMetrics approximates the classical software-science measures
type HalsteadMetrics struct {
	Vocabulary int     `json:"vocabulary"`
	Length     int     `json:"length"`
	Volume     float64 `json:"volume"`
	Difficulty float64 `json:"difficulty"`
	Effort     float64 `json:"effort"`
}

// ComplexityReport contains complexity figures for one source file
type ComplexityReport struct {
	Cyclomatic int             `json:"cyclomatic"`
	Cognitive  float64         `json:"cognitive"`
	Halstead   HalsteadMetrics `json:"halstead"`
}

// DuplicationKind classifies a duplicate region by similarity
type DuplicationKind string

const (
	DuplicationExact      DuplicationKind = "exact"
	DuplicationSimilar    DuplicationKind = "similar"
	DuplicationRefactored DuplicationKind = "refactored"
)

// DuplicationRecord is a region of one file suspected to duplicate another
type DuplicationRecord struct {
	File           string          `json:"file"`
	Lines          []int           `json:"lines"`
	DuplicateOf    string          `json:"duplicate_of"`
	DuplicateLines []int           `json:"duplicate_lines,omitempty"`
	Similarity     float64         `json:"similarity"`
	Kind           DuplicationKind `json:"kind"`
}

// UncoveredFile lists lines in a file that no test exercised
type UncoveredFile struct {
	File  string `json:"file" yaml:"file"`
	Lines []int  `json:"lines" yaml:"lines"`
}

// CoverageReport summarizes test coverage for a file
type CoverageReport struct {
	Statements float64         `json:"statements" yaml:"statements"`
	Branches   float64         `json:"branches" yaml:"branches"`
	Functions  float64         `json:"functions" yaml:"functions"`
	Lines      float64         `json:"lines" yaml:"lines"`
	Uncovered  []UncoveredFile `json:"uncovered" yaml:"uncovered"`
}

// Report is the complete, immutable result of analyzing one source file
type Report struct {
	RunID        string              `json:"run_id,omitempty"`
	File         string              `json:"file"`
	Timestamp    time.Time           `json:"timestamp"`
	Metrics      Metrics             `json:"metrics"`
	Issues       []Issue             `json:"issues"`
	Complexity   ComplexityReport    `json:"complexity"`
	Duplications []DuplicationRecord `json:"duplications"`
	Coverage     CoverageReport      `json:"coverage"`
	Suggestions  []string            `json:"suggestions"`
	Grade        Grade               `json:"grade"`
}

// AnalysisReport aggregates per-file reports from one batch run
type AnalysisReport struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     ReportSummary `json:"summary"`
	Files       []Report      `json:"files"`
}

// ReportSummary contains aggregated statistics
type ReportSummary struct {
	TotalFiles     int               `json:"total_files"`
	TotalIssues    int               `json:"total_issues"`
	BySeverity     map[Severity]int  `json:"by_severity"`
	ByDimension    map[Dimension]int `json:"by_dimension"`
	ByRule         map[string]int    `json:"by_rule"`
	AverageMetrics Metrics           `json:"average_metrics"`
	Grade          Grade             `json:"grade"`
	GradeCounts    map[Grade]int     `json:"grade_counts"`
	HotspotFiles   []FileHotspot     `json:"hotspot_files"`
}

// FileHotspot represents a file with many issues
type FileHotspot struct {
	FilePath   string `json:"file_path"`
	IssueCount int    `json:"issue_count"`
	Grade      Grade  `json:"grade"`
}
