package model

// IssueType classifies how an issue should be presented
type IssueType string

const (
	IssueTypeError      IssueType = "error"
	IssueTypeWarning    IssueType = "warning"
	IssueTypeInfo       IssueType = "info"
	IssueTypeSuggestion IssueType = "suggestion"
)

// Severity represents the impact level of an issue
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists severities from most to least severe
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Effort estimates the work needed to fix an issue
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Dimension is one of the five quality axes
type Dimension string

const (
	DimensionMaintainability Dimension = "maintainability"
	DimensionReliability     Dimension = "reliability"
	DimensionSecurity        Dimension = "security"
	DimensionPerformance     Dimension = "performance"
	DimensionAccessibility   Dimension = "accessibility"
)

// Dimensions lists all dimensions in reporting order.
// Issue merge order and suggestion order both follow it.
var Dimensions = []Dimension{
	DimensionMaintainability,
	DimensionReliability,
	DimensionSecurity,
	DimensionPerformance,
	DimensionAccessibility,
}

// Issue represents a single finding produced by an analyzer pass.
// Issues are never modified after they are appended to a report.
type Issue struct {
	ID        string    `json:"id"`
	Type      IssueType `json:"type"`
	Severity  Severity  `json:"severity"`
	Dimension Dimension `json:"dimension"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Column    int       `json:"column"`
	Message   string    `json:"message"`
	Rule      string    `json:"rule"`
	Fix       string    `json:"fix,omitempty"`
	Impact    string    `json:"impact"`
	Effort    Effort    `json:"effort"`
}
