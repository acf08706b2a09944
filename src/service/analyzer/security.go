package analyzer

import (
	"regexp"

	"quality-engine/src/config"
	"quality-engine/src/model"
)

var (
	sqlInjectionPatterns = []*regexp.Regexp{
		// a quoted query followed by concatenation or interpolation
		regexp.MustCompile("(?i)[\"'`][^\"'`]*\\b(?:select\\s|insert\\s+into|update\\s+\\w+\\s+set|delete\\s+from)[^\"'`]*(?:[\"'`]\\s*\\+|\\$\\{)"),
		regexp.MustCompile(`(?i)\bSprintf\(\s*"[^"]*\b(?:select\s|insert\s+into|update\s+\w+\s+set|delete\s+from)[^"]*%[sv]`),
	}
	xssPattern    = regexp.MustCompile(`\.(?:innerHTML|outerHTML)\s*\+?=(?:[^=]|$)|\bdangerouslySetInnerHTML\b|\bdocument\.write(?:ln)?\s*\(|\binsertAdjacentHTML\s*\(`)
	secretPattern = regexp.MustCompile("(?i)\\b(?:password|passwd|pwd|api_?key|secret|token)[\"']?\\s*[=:]\\s*[\"'`][^\"'`]+[\"'`]")
)

// SecurityAnalyzer checks for injection, XSS sinks and hardcoded secrets.
// It scans raw lines since the findings live inside string literals.
type SecurityAnalyzer struct {
	cfg config.SecurityConfig
}

// NewSecurityAnalyzer creates a new security analyzer
func NewSecurityAnalyzer(cfg config.SecurityConfig) *SecurityAnalyzer {
	return &SecurityAnalyzer{cfg: cfg}
}

// Name returns the analyzer name
func (a *SecurityAnalyzer) Name() string {
	return "security"
}

// Dimension returns the scored dimension
func (a *SecurityAnalyzer) Dimension() model.Dimension {
	return model.DimensionSecurity
}

// IsEnabled returns whether the analyzer is enabled
func (a *SecurityAnalyzer) IsEnabled() bool {
	return a.cfg.Enabled
}

// Analyze reports every occurrence of each security pattern
func (a *SecurityAnalyzer) Analyze(p *Pass) {
	for i, line := range p.Source.Lines {
		for _, re := range sqlInjectionPatterns {
			for _, m := range re.FindAllStringIndex(line, -1) {
				p.Report(RuleNoSQLInjection, i+1, m[0]+1,
					"Potential SQL injection: query built from concatenated input",
					a.cfg.InjectionPenalty)
			}
		}

		for _, m := range xssPattern.FindAllStringIndex(line, -1) {
			p.Report(RuleNoXSS, i+1, m[0]+1,
				"Potential XSS: raw HTML written to the DOM",
				a.cfg.XSSPenalty)
		}

		for _, m := range secretPattern.FindAllStringIndex(line, -1) {
			p.Report(RuleNoHardcodedSecrets, i+1, m[0]+1,
				"Hardcoded secret detected",
				a.cfg.SecretPenalty)
		}
	}
}
