package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

var (
	// numbers not preceded by an identifier character, a dot, # or $
	numberPattern     = regexp.MustCompile(`(?:^|[^\w.$#])(\d+(?:\.\d+)?)\b`)
	constDeclPattern  = regexp.MustCompile(`\bconst\b|\benum\b|^\s*#define\b`)
	constBlockStart   = regexp.MustCompile(`^\s*const\s*\(\s*$`)
	importLinePattern = regexp.MustCompile(`^\s*(?:import|from|#include|package)\b`)
)

// MaintainabilityAnalyzer checks function length, file length, nesting depth
// and magic numbers
type MaintainabilityAnalyzer struct {
	cfg config.MaintainabilityConfig
}

// NewMaintainabilityAnalyzer creates a new maintainability analyzer
func NewMaintainabilityAnalyzer(cfg config.MaintainabilityConfig) *MaintainabilityAnalyzer {
	return &MaintainabilityAnalyzer{cfg: cfg}
}

// Name returns the analyzer name
func (a *MaintainabilityAnalyzer) Name() string {
	return "maintainability"
}

// Dimension returns the scored dimension
func (a *MaintainabilityAnalyzer) Dimension() model.Dimension {
	return model.DimensionMaintainability
}

// IsEnabled returns whether the analyzer is enabled
func (a *MaintainabilityAnalyzer) IsEnabled() bool {
	return a.cfg.Enabled
}

// Analyze runs all maintainability checks
func (a *MaintainabilityAnalyzer) Analyze(p *Pass) {
	a.checkFunctionLength(p)
	a.checkFileLength(p)
	a.checkNesting(p)
	a.checkMagicNumbers(p)
}

// checkFunctionLength counts the non-empty lines strictly between a
// function's opening line and the line that closes its brace
func (a *MaintainabilityAnalyzer) checkFunctionLength(p *Pass) {
	lines := p.Source.MaskedLines

	for i, line := range lines {
		if !strings.Contains(line, "{") || !util.IsFunctionStart(line) {
			continue
		}

		depth := util.BraceDelta(line)
		if depth <= 0 {
			continue // single-line body
		}

		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			depth += util.BraceDelta(lines[j])
			if depth <= 0 {
				end = j
				break
			}
		}

		bodyLines := 0
		for _, body := range lines[i+1 : end] {
			if !util.IsBlank(body) {
				bodyLines++
			}
		}

		if bodyLines > a.cfg.MaxFunctionLines {
			p.Report(RuleMaxFunctionLength, i+1, util.Indent(p.Source.Lines[i]),
				fmt.Sprintf("Function has %d lines (max %d)", bodyLines, a.cfg.MaxFunctionLines),
				a.cfg.LongFunctionPenalty)
		}
	}
}

func (a *MaintainabilityAnalyzer) checkFileLength(p *Pass) {
	if n := p.Source.LineCount(); n > a.cfg.MaxFileLines {
		p.Report(RuleMaxFileLength, 1, 1,
			fmt.Sprintf("File has %d lines (max %d)", n, a.cfg.MaxFileLines),
			a.cfg.LargeFilePenalty)
	}
}

// checkNesting reports once, at the first point the deepest nesting is reached
func (a *MaintainabilityAnalyzer) checkNesting(p *Pass) {
	depth, maxDepth, maxOffset := 0, 0, 0
	for i, ch := range p.Source.Masked {
		switch ch {
		case '{':
			depth++
			if depth > maxDepth {
				maxDepth, maxOffset = depth, i
			}
		case '}':
			depth--
		}
	}

	if maxDepth > a.cfg.MaxNestingDepth {
		p.ReportAt(RuleMaxNestingDepth, maxOffset,
			fmt.Sprintf("Nesting depth %d exceeds %d", maxDepth, a.cfg.MaxNestingDepth),
			a.cfg.DeepNestingPenalty)
	}
}

func (a *MaintainabilityAnalyzer) checkMagicNumbers(p *Pass) {
	inConstBlock := false

	for i, line := range p.Source.MaskedLines {
		switch {
		case inConstBlock:
			if strings.TrimSpace(line) == ")" {
				inConstBlock = false
			}
			continue
		case constBlockStart.MatchString(line):
			inConstBlock = true
			continue
		case util.IsBlank(line), util.IsComment(p.Source.Lines[i]),
			constDeclPattern.MatchString(line), importLinePattern.MatchString(line):
			continue
		}

		for _, m := range numberPattern.FindAllStringSubmatchIndex(line, -1) {
			literal := line[m[2]:m[3]]
			value, err := strconv.ParseFloat(literal, 64)
			if err != nil || value <= a.cfg.MagicNumberThreshold {
				continue
			}
			p.Report(RuleNoMagicNumbers, i+1, m[2]+1,
				fmt.Sprintf("Magic number %s should be a named constant", literal),
				a.cfg.MagicNumberPenalty)
		}
	}
}
