package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "quality-engine",
			Version:     "1.0.0",
			Description: "Static code quality analysis engine",
		},
		Concurrency: ConcurrencyConfig{
			ParallelAnalyzers: false,
			MaxParallelFiles:  8,
		},
		Analyzers: AnalyzersConfig{
			Maintainability: MaintainabilityConfig{
				Enabled:              true,
				MaxFunctionLines:     50,
				MaxFileLines:         500,
				MaxNestingDepth:      4,
				MagicNumberThreshold: 10,
				LongFunctionPenalty:  10,
				LargeFilePenalty:     15,
				DeepNestingPenalty:   20,
				MagicNumberPenalty:   2,
			},
			Reliability: ReliabilityConfig{
				Enabled:                     true,
				MissingErrorHandlingPenalty: 20,
				UnguardedAccessPenalty:      15,
				WeakTypingPenalty:           10,
			},
			Security: SecurityConfig{
				Enabled:          true,
				InjectionPenalty: 30,
				XSSPenalty:       30,
				SecretPenalty:    25,
			},
			Performance: PerformanceConfig{
				Enabled:                true,
				InefficientLoopPenalty: 15,
				ListenerLeakPenalty:    20,
				RerenderPenalty:        5,
			},
			Accessibility: AccessibilityConfig{
				Enabled:            true,
				MissingAltPenalty:  20,
				MissingAriaPenalty: 10,
				KeyboardPenalty:    15,
			},
		},
		Complexity: ComplexityConfig{
			LineWeight:      0.1,
			FunctionWeight:  0.5,
			ConditionWeight: 0.3,
			LoopWeight:      0.4,
		},
		Duplication: DuplicationConfig{
			Enabled:             true,
			MinLines:            5,
			ExactThreshold:      0.98,
			SimilarThreshold:    0.85,
			RefactoredThreshold: 0.6,
		},
		Coverage: CoverageConfig{
			Placeholder: true,
			Service: CoverageServiceConfig{
				Timeout: 30 * time.Second,
				Retry: RetryConfig{
					MaxAttempts:   3,
					BackoffFactor: 1.5,
					InitialDelay:  100 * time.Millisecond,
					MaxDelay:      5 * time.Second,
					RetryOnStatus: []int{502, 503, 504},
				},
			},
		},
		Scoring: ScoringConfig{
			Weights: DimensionWeights{
				Maintainability: 1,
				Reliability:     1,
				Security:        1,
				Performance:     1,
				Accessibility:   1,
			},
			Grades: GradeThresholds{
				A: 90,
				B: 80,
				C: 70,
				D: 60,
			},
			SuggestionThreshold: 70,
		},
		Rules: RulesConfig{
			Disabled: []string{},
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/vendor/**", "**/node_modules/**", "**/dist/**",
				"**/build/**", "**/.git/**",
			},
			Extensions: []string{
				".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs",
				".go", ".py", ".java", ".cs", ".vue", ".svelte", ".html",
			},
		},
		Output: OutputConfig{
			Formats:            []string{"json"},
			OutputDir:          ".",
			IncludeSuggestions: true,
			IncludeMetrics:     true,
			MaxIssuesPerFile:   0,
			HotspotsTopN:       10,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
		},
	}
}
