package analyzer

import (
	"fmt"
	"regexp"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

var (
	asyncPattern         = regexp.MustCompile(`\basync\b`)
	errorHandlingPattern = regexp.MustCompile(`\btry\s*\{|\.catch\s*\(|\bif\s+err\s*!=\s*nil\b|\bexcept\b`)

	propertyAccessPattern = regexp.MustCompile(`[\w$\])]\.[A-Za-z_$]`)
	nullGuardPattern      = regexp.MustCompile(`\?\.|\?\?|&&|\bif\s*\(|[!=]==?\s*(?:null|undefined|nil)\b|\b(?:null|undefined|nil)\s*[!=]==?`)

	weakTypingPattern = regexp.MustCompile(`:\s*any\b|<any>|\bas\s+(?:any|unknown)\b|\bas\s+[A-Z][\w$]*|\binterface\{\}|\.\(\s*[*\w.\[\]]+\s*\)`)
	moduleLinePattern = regexp.MustCompile(`^\s*(?:import\b|export\b.*\bfrom\b)`)
)

// ReliabilityAnalyzer checks async error handling, null safety and typing
type ReliabilityAnalyzer struct {
	cfg config.ReliabilityConfig
}

// NewReliabilityAnalyzer creates a new reliability analyzer
func NewReliabilityAnalyzer(cfg config.ReliabilityConfig) *ReliabilityAnalyzer {
	return &ReliabilityAnalyzer{cfg: cfg}
}

// Name returns the analyzer name
func (a *ReliabilityAnalyzer) Name() string {
	return "reliability"
}

// Dimension returns the scored dimension
func (a *ReliabilityAnalyzer) Dimension() model.Dimension {
	return model.DimensionReliability
}

// IsEnabled returns whether the analyzer is enabled
func (a *ReliabilityAnalyzer) IsEnabled() bool {
	return a.cfg.Enabled
}

// Analyze runs all reliability checks. Each check is file-level and
// deducts at most once.
func (a *ReliabilityAnalyzer) Analyze(p *Pass) {
	text := p.Source.Masked

	asyncSites := asyncPattern.FindAllStringIndex(text, -1)
	if deficit := len(asyncSites) - util.CountMatches(errorHandlingPattern, text); deficit > 0 {
		p.ReportAt(RuleAsyncErrorHandling, asyncSites[0][0],
			fmt.Sprintf("%d async operation(s) without error handling", deficit),
			a.cfg.MissingErrorHandlingPenalty)
	}

	accesses := propertyAccessPattern.FindAllStringIndex(text, -1)
	if unguarded := len(accesses) - util.CountMatches(nullGuardPattern, text); unguarded > 0 {
		// the match starts at the character before the dot
		p.ReportAt(RuleNullSafety, accesses[0][0]+1,
			fmt.Sprintf("%d property access(es) without null checks", unguarded),
			a.cfg.UnguardedAccessPenalty)
	}

	a.checkWeakTyping(p)
}

func (a *ReliabilityAnalyzer) checkWeakTyping(p *Pass) {
	count, firstLine, firstCol := 0, 0, 0
	for i, line := range p.Source.MaskedLines {
		if moduleLinePattern.MatchString(line) {
			continue
		}
		matches := weakTypingPattern.FindAllStringIndex(line, -1)
		if len(matches) > 0 && count == 0 {
			firstLine, firstCol = i+1, matches[0][0]+1
		}
		count += len(matches)
	}

	if count > 0 {
		p.Report(RuleTypeSafety, firstLine, firstCol,
			fmt.Sprintf("%d weakly typed expression(s)", count),
			a.cfg.WeakTypingPenalty)
	}
}
