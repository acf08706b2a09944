package analyzer

import "quality-engine/src/model"

// Rule describes one check. Issue ids are IDPrefix plus a per-rule counter.
type Rule struct {
	ID        string
	IDPrefix  string
	Dimension model.Dimension
	Type      model.IssueType
	Severity  model.Severity
	Effort    model.Effort
	Title     string
	Fix       string
	Impact    string
}

var (
	RuleMaxFunctionLength = Rule{
		ID:        "max-function-length",
		IDPrefix:  "long-function",
		Dimension: model.DimensionMaintainability,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortMedium,
		Title:     "Function body is too long",
		Fix:       "Extract smaller functions",
		Impact:    "Reduces readability and maintainability",
	}
	RuleMaxFileLength = Rule{
		ID:        "max-file-length",
		IDPrefix:  "large-file",
		Dimension: model.DimensionMaintainability,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortHigh,
		Title:     "File is too large",
		Fix:       "Split the file into smaller modules",
		Impact:    "Large files are hard to navigate and review",
	}
	RuleMaxNestingDepth = Rule{
		ID:        "max-nesting-depth",
		IDPrefix:  "deep-nesting",
		Dimension: model.DimensionMaintainability,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortMedium,
		Title:     "Blocks are nested too deeply",
		Fix:       "Use early returns or extract nested blocks",
		Impact:    "Deep nesting increases cognitive load",
	}
	RuleNoMagicNumbers = Rule{
		ID:        "no-magic-numbers",
		IDPrefix:  "magic-number",
		Dimension: model.DimensionMaintainability,
		Type:      model.IssueTypeInfo,
		Severity:  model.SeverityLow,
		Effort:    model.EffortLow,
		Title:     "Magic number literal",
		Fix:       "Replace the literal with a named constant",
		Impact:    "Unnamed values hide intent",
	}

	RuleAsyncErrorHandling = Rule{
		ID:        "async-error-handling",
		IDPrefix:  "async-error",
		Dimension: model.DimensionReliability,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityHigh,
		Effort:    model.EffortMedium,
		Title:     "Async code without error handling",
		Fix:       "Wrap awaited calls in try/catch or attach .catch()",
		Impact:    "Unhandled rejections can crash the process or fail silently",
	}
	RuleNullSafety = Rule{
		ID:        "null-safety",
		IDPrefix:  "null-check",
		Dimension: model.DimensionReliability,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortLow,
		Title:     "Property access without null guard",
		Fix:       "Use optional chaining or guard against null",
		Impact:    "May dereference null or undefined at runtime",
	}
	RuleTypeSafety = Rule{
		ID:        "type-safety",
		IDPrefix:  "type-safety",
		Dimension: model.DimensionReliability,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortMedium,
		Title:     "Weak typing",
		Fix:       "Replace any and unchecked casts with concrete types",
		Impact:    "Type errors escape to runtime",
	}

	RuleNoSQLInjection = Rule{
		ID:        "no-sql-injection",
		IDPrefix:  "sql-injection",
		Dimension: model.DimensionSecurity,
		Type:      model.IssueTypeError,
		Severity:  model.SeverityCritical,
		Effort:    model.EffortMedium,
		Title:     "SQL built from string concatenation",
		Fix:       "Use parameterized queries",
		Impact:    "Attackers can read or modify the database",
	}
	RuleNoXSS = Rule{
		ID:        "no-xss",
		IDPrefix:  "xss",
		Dimension: model.DimensionSecurity,
		Type:      model.IssueTypeError,
		Severity:  model.SeverityCritical,
		Effort:    model.EffortMedium,
		Title:     "Raw HTML sink",
		Fix:       "Sanitize the value or use textContent",
		Impact:    "Allows script injection into the page",
	}
	RuleNoHardcodedSecrets = Rule{
		ID:        "no-hardcoded-secrets",
		IDPrefix:  "hardcoded-secret",
		Dimension: model.DimensionSecurity,
		Type:      model.IssueTypeError,
		Severity:  model.SeverityHigh,
		Effort:    model.EffortLow,
		Title:     "Hardcoded credential",
		Fix:       "Load secrets from the environment or a secret store",
		Impact:    "Credentials leak through source control",
	}

	RuleInefficientLoop = Rule{
		ID:        "inefficient-loop",
		IDPrefix:  "inefficient-loop",
		Dimension: model.DimensionPerformance,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortLow,
		Title:     "Loop bound re-evaluated every iteration",
		Fix:       "Cache the length or use a range/for-of loop",
		Impact:    "Repeated length lookups in hot loops",
	}
	RuleNoListenerLeak = Rule{
		ID:        "no-listener-leak",
		IDPrefix:  "listener-leak",
		Dimension: model.DimensionPerformance,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityHigh,
		Effort:    model.EffortMedium,
		Title:     "Subscription without cleanup",
		Fix:       "Remove the listener or unsubscribe on teardown",
		Impact:    "Leaks memory and keeps stale handlers alive",
	}
	RuleUnnecessaryRerender = Rule{
		ID:        "unnecessary-rerender",
		IDPrefix:  "rerender",
		Dimension: model.DimensionPerformance,
		Type:      model.IssueTypeInfo,
		Severity:  model.SeverityLow,
		Effort:    model.EffortLow,
		Title:     "State update next to state declaration",
		Fix:       "Move the update into an effect or event handler",
		Impact:    "Can trigger extra renders",
	}

	RuleImgAlt = Rule{
		ID:        "img-alt",
		IDPrefix:  "missing-alt",
		Dimension: model.DimensionAccessibility,
		Type:      model.IssueTypeError,
		Severity:  model.SeverityHigh,
		Effort:    model.EffortLow,
		Title:     "Image without alt text",
		Fix:       "Add an alt attribute describing the image",
		Impact:    "Screen reader users cannot perceive the image",
	}
	RuleAriaLabel = Rule{
		ID:        "aria-label",
		IDPrefix:  "missing-aria",
		Dimension: model.DimensionAccessibility,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortLow,
		Title:     "Control without accessible label",
		Fix:       "Add aria-label or aria-labelledby",
		Impact:    "Assistive technology cannot name the control",
	}
	RuleKeyboardAccessible = Rule{
		ID:        "keyboard-accessible",
		IDPrefix:  "keyboard-access",
		Dimension: model.DimensionAccessibility,
		Type:      model.IssueTypeWarning,
		Severity:  model.SeverityMedium,
		Effort:    model.EffortLow,
		Title:     "Click handler without keyboard handler",
		Fix:       "Add onKeyDown or use a native button",
		Impact:    "Keyboard users cannot trigger the action",
	}
)

// Catalog returns every rule in reporting order
func Catalog() []Rule {
	return []Rule{
		RuleMaxFunctionLength,
		RuleMaxFileLength,
		RuleMaxNestingDepth,
		RuleNoMagicNumbers,
		RuleAsyncErrorHandling,
		RuleNullSafety,
		RuleTypeSafety,
		RuleNoSQLInjection,
		RuleNoXSS,
		RuleNoHardcodedSecrets,
		RuleInefficientLoop,
		RuleNoListenerLeak,
		RuleUnnecessaryRerender,
		RuleImgAlt,
		RuleAriaLabel,
		RuleKeyboardAccessible,
	}
}

// LookupRule finds a rule by id
func LookupRule(id string) (Rule, bool) {
	for _, r := range Catalog() {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
