package analyzer

import (
	"regexp"

	"quality-engine/src/config"
	"quality-engine/src/model"
)

var (
	// tag bodies may contain {...} expressions holding '>' from arrow functions
	imgTagPattern     = regexp.MustCompile(`<img\b(?:[^>{]|\{[^}]*\})*>`)
	controlTagPattern = regexp.MustCompile(`<(?:button|input)\b(?:[^>{]|\{[^}]*\})*>`)
	altAttrPattern    = regexp.MustCompile(`\balt\s*=`)
	ariaAttrPattern   = regexp.MustCompile(`\baria-label(?:ledby)?\s*=`)
	hiddenTypePattern = regexp.MustCompile(`(?i)\btype\s*=\s*["']hidden["']`)
	onClickPattern    = regexp.MustCompile(`(?i)\bonclick\s*=`)
	onKeyPattern      = regexp.MustCompile(`(?i)\bonkey(?:down|up|press)\s*=`)
)

// AccessibilityAnalyzer checks markup for alt text, labels and keyboard
// support. Tags may span lines, so it scans the whole text.
type AccessibilityAnalyzer struct {
	cfg config.AccessibilityConfig
}

// NewAccessibilityAnalyzer creates a new accessibility analyzer
func NewAccessibilityAnalyzer(cfg config.AccessibilityConfig) *AccessibilityAnalyzer {
	return &AccessibilityAnalyzer{cfg: cfg}
}

// Name returns the analyzer name
func (a *AccessibilityAnalyzer) Name() string {
	return "accessibility"
}

// Dimension returns the scored dimension
func (a *AccessibilityAnalyzer) Dimension() model.Dimension {
	return model.DimensionAccessibility
}

// IsEnabled returns whether the analyzer is enabled
func (a *AccessibilityAnalyzer) IsEnabled() bool {
	return a.cfg.Enabled
}

// Analyze runs all accessibility checks
func (a *AccessibilityAnalyzer) Analyze(p *Pass) {
	text := p.Source.Text

	for _, m := range imgTagPattern.FindAllStringIndex(text, -1) {
		if !altAttrPattern.MatchString(text[m[0]:m[1]]) {
			p.ReportAt(RuleImgAlt, m[0], "Image is missing alt text", a.cfg.MissingAltPenalty)
		}
	}

	for _, m := range controlTagPattern.FindAllStringIndex(text, -1) {
		tag := text[m[0]:m[1]]
		if ariaAttrPattern.MatchString(tag) || hiddenTypePattern.MatchString(tag) {
			continue
		}
		p.ReportAt(RuleAriaLabel, m[0], "Interactive element is missing an ARIA label", a.cfg.MissingAriaPenalty)
	}

	for i, line := range p.Source.Lines {
		if onKeyPattern.MatchString(line) {
			continue
		}
		for _, m := range onClickPattern.FindAllStringIndex(line, -1) {
			p.Report(RuleKeyboardAccessible, i+1, m[0]+1,
				"Click handler has no keyboard equivalent", a.cfg.KeyboardPenalty)
		}
	}
}
