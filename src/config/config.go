package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Analyzers   AnalyzersConfig   `yaml:"analyzers"`
	Complexity  ComplexityConfig  `yaml:"complexity"`
	Duplication DuplicationConfig `yaml:"duplication"`
	Coverage    CoverageConfig    `yaml:"coverage"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Rules       RulesConfig       `yaml:"rules"`
	Exclusions  ExclusionsConfig  `yaml:"exclusions"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	ParallelAnalyzers bool `yaml:"parallel_analyzers"`
	MaxParallelFiles  int  `yaml:"max_parallel_files"`
}

// AnalyzersConfig contains settings for the five dimension analyzers
type AnalyzersConfig struct {
	Maintainability MaintainabilityConfig `yaml:"maintainability"`
	Reliability     ReliabilityConfig     `yaml:"reliability"`
	Security        SecurityConfig        `yaml:"security"`
	Performance     PerformanceConfig     `yaml:"performance"`
	Accessibility   AccessibilityConfig   `yaml:"accessibility"`
}

// MaintainabilityConfig contains maintainability thresholds and penalties
type MaintainabilityConfig struct {
	Enabled              bool    `yaml:"enabled"`
	MaxFunctionLines     int     `yaml:"max_function_lines"`
	MaxFileLines         int     `yaml:"max_file_lines"`
	MaxNestingDepth      int     `yaml:"max_nesting_depth"`
	MagicNumberThreshold float64 `yaml:"magic_number_threshold"`
	LongFunctionPenalty  float64 `yaml:"long_function_penalty"`
	LargeFilePenalty     float64 `yaml:"large_file_penalty"`
	DeepNestingPenalty   float64 `yaml:"deep_nesting_penalty"`
	MagicNumberPenalty   float64 `yaml:"magic_number_penalty"`
}

// ReliabilityConfig contains reliability penalties
type ReliabilityConfig struct {
	Enabled                     bool    `yaml:"enabled"`
	MissingErrorHandlingPenalty float64 `yaml:"missing_error_handling_penalty"`
	UnguardedAccessPenalty      float64 `yaml:"unguarded_access_penalty"`
	WeakTypingPenalty           float64 `yaml:"weak_typing_penalty"`
}

// SecurityConfig contains security penalties
type SecurityConfig struct {
	Enabled          bool    `yaml:"enabled"`
	InjectionPenalty float64 `yaml:"injection_penalty"`
	XSSPenalty       float64 `yaml:"xss_penalty"`
	SecretPenalty    float64 `yaml:"secret_penalty"`
}

// PerformanceConfig contains performance penalties
type PerformanceConfig struct {
	Enabled                bool    `yaml:"enabled"`
	InefficientLoopPenalty float64 `yaml:"inefficient_loop_penalty"`
	ListenerLeakPenalty    float64 `yaml:"listener_leak_penalty"`
	RerenderPenalty        float64 `yaml:"rerender_penalty"`
}

// AccessibilityConfig contains accessibility penalties
type AccessibilityConfig struct {
	Enabled            bool    `yaml:"enabled"`
	MissingAltPenalty  float64 `yaml:"missing_alt_penalty"`
	MissingAriaPenalty float64 `yaml:"missing_aria_penalty"`
	KeyboardPenalty    float64 `yaml:"keyboard_penalty"`
}

// ComplexityConfig contains the cognitive complexity weights
type ComplexityConfig struct {
	LineWeight      float64 `yaml:"line_weight"`
	FunctionWeight  float64 `yaml:"function_weight"`
	ConditionWeight float64 `yaml:"condition_weight"`
	LoopWeight      float64 `yaml:"loop_weight"`
}

// DuplicationConfig contains duplication detector settings
type DuplicationConfig struct {
	Enabled             bool    `yaml:"enabled"`
	MinLines            int     `yaml:"min_lines"`
	ExactThreshold      float64 `yaml:"exact_threshold"`
	SimilarThreshold    float64 `yaml:"similar_threshold"`
	RefactoredThreshold float64 `yaml:"refactored_threshold"`
}

// CoverageConfig contains settings for externally sourced coverage data
type CoverageConfig struct {
	File        string                `yaml:"file"`
	Service     CoverageServiceConfig `yaml:"service"`
	Placeholder bool                  `yaml:"placeholder"`
}

// CoverageServiceConfig contains coverage service connection settings
type CoverageServiceConfig struct {
	URL     string        `yaml:"url"`
	Project string        `yaml:"project"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

// RetryConfig contains retry settings for API calls
type RetryConfig struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	BackoffFactor float64       `yaml:"backoff_factor"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	RetryOnStatus []int         `yaml:"retry_on_status"`
}

// ScoringConfig contains aggregation weights and grade thresholds
type ScoringConfig struct {
	Weights             DimensionWeights `yaml:"weights"`
	Grades              GradeThresholds  `yaml:"grades"`
	SuggestionThreshold float64          `yaml:"suggestion_threshold"`
}

// DimensionWeights weights each dimension in the overall score
type DimensionWeights struct {
	Maintainability float64 `yaml:"maintainability"`
	Reliability     float64 `yaml:"reliability"`
	Security        float64 `yaml:"security"`
	Performance     float64 `yaml:"performance"`
	Accessibility   float64 `yaml:"accessibility"`
}

// GradeThresholds holds the inclusive lower bound for each passing grade
type GradeThresholds struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// RulesConfig controls individual rules
type RulesConfig struct {
	Disabled []string `yaml:"disabled"`
}

// ExclusionsConfig contains exclusion patterns for batch scans
type ExclusionsConfig struct {
	FilePatterns []string `yaml:"file_patterns"`
	Files        []string `yaml:"files"`
	Extensions   []string `yaml:"extensions"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats            []string `yaml:"formats"`
	OutputDir          string   `yaml:"output_dir"`
	IncludeSuggestions bool     `yaml:"include_suggestions"`
	IncludeMetrics     bool     `yaml:"include_metrics"`
	MaxIssuesPerFile   int      `yaml:"max_issues_per_file"`
	HotspotsTopN       int      `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}
