package config

import (
	"errors"
	"fmt"
)

// Validate checks that thresholds, penalties and weights are usable
func (c *Config) Validate() error {
	var errs []error

	penalties := map[string]float64{
		"analyzers.maintainability.long_function_penalty":      c.Analyzers.Maintainability.LongFunctionPenalty,
		"analyzers.maintainability.large_file_penalty":         c.Analyzers.Maintainability.LargeFilePenalty,
		"analyzers.maintainability.deep_nesting_penalty":       c.Analyzers.Maintainability.DeepNestingPenalty,
		"analyzers.maintainability.magic_number_penalty":       c.Analyzers.Maintainability.MagicNumberPenalty,
		"analyzers.reliability.missing_error_handling_penalty": c.Analyzers.Reliability.MissingErrorHandlingPenalty,
		"analyzers.reliability.unguarded_access_penalty":       c.Analyzers.Reliability.UnguardedAccessPenalty,
		"analyzers.reliability.weak_typing_penalty":            c.Analyzers.Reliability.WeakTypingPenalty,
		"analyzers.security.injection_penalty":                 c.Analyzers.Security.InjectionPenalty,
		"analyzers.security.xss_penalty":                       c.Analyzers.Security.XSSPenalty,
		"analyzers.security.secret_penalty":                    c.Analyzers.Security.SecretPenalty,
		"analyzers.performance.inefficient_loop_penalty":       c.Analyzers.Performance.InefficientLoopPenalty,
		"analyzers.performance.listener_leak_penalty":          c.Analyzers.Performance.ListenerLeakPenalty,
		"analyzers.performance.rerender_penalty":               c.Analyzers.Performance.RerenderPenalty,
		"analyzers.accessibility.missing_alt_penalty":          c.Analyzers.Accessibility.MissingAltPenalty,
		"analyzers.accessibility.missing_aria_penalty":         c.Analyzers.Accessibility.MissingAriaPenalty,
		"analyzers.accessibility.keyboard_penalty":             c.Analyzers.Accessibility.KeyboardPenalty,
	}
	for key, value := range penalties {
		if value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative (got %v)", key, value))
		}
	}

	m := c.Analyzers.Maintainability
	if m.MaxFunctionLines < 1 || m.MaxFileLines < 1 || m.MaxNestingDepth < 1 {
		errs = append(errs, errors.New("maintainability line and nesting limits must be positive"))
	}

	w := c.Scoring.Weights
	for _, weight := range []float64{w.Maintainability, w.Reliability, w.Security, w.Performance, w.Accessibility} {
		if weight < 0 {
			errs = append(errs, fmt.Errorf("scoring weights must not be negative (got %v)", weight))
			break
		}
	}
	if w.Maintainability+w.Reliability+w.Security+w.Performance+w.Accessibility <= 0 {
		errs = append(errs, errors.New("scoring weights must sum to a positive value"))
	}

	g := c.Scoring.Grades
	if !(g.A > g.B && g.B > g.C && g.C > g.D) {
		errs = append(errs, fmt.Errorf("grade thresholds must be strictly descending (a=%v b=%v c=%v d=%v)", g.A, g.B, g.C, g.D))
	}

	d := c.Duplication
	if d.MinLines < 2 {
		errs = append(errs, fmt.Errorf("duplication.min_lines must be at least 2 (got %d)", d.MinLines))
	}
	if !(d.ExactThreshold >= d.SimilarThreshold && d.SimilarThreshold >= d.RefactoredThreshold && d.RefactoredThreshold > 0) {
		errs = append(errs, errors.New("duplication thresholds must satisfy exact >= similar >= refactored > 0"))
	}

	if c.Concurrency.MaxParallelFiles < 1 {
		errs = append(errs, fmt.Errorf("concurrency.max_parallel_files must be at least 1 (got %d)", c.Concurrency.MaxParallelFiles))
	}

	return errors.Join(errs...)
}

// IsRuleDisabled reports whether a rule id is listed in rules.disabled
func (c *Config) IsRuleDisabled(ruleID string) bool {
	for _, id := range c.Rules.Disabled {
		if id == ruleID {
			return true
		}
	}
	return false
}
