package util

import (
	"regexp"
	"strings"
)

// Line-oriented syntax heuristics shared by the complexity calculator and the
// analyzer passes. None of these build a syntax tree.
var (
	ConditionPattern = regexp.MustCompile(`\bif\b`)
	SwitchPattern    = regexp.MustCompile(`\bswitch\b`)
	LoopPattern      = regexp.MustCompile(`\b(?:for|while)\b|\.forEach\s*\(`)

	functionKeywordPattern = regexp.MustCompile(`\bfunction\b|\bfunc\b|\bdef\s+[A-Za-z_]\w*\s*\(|=>\s*\{`)
	methodPattern          = regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|async|override|get|set)\s+)*([A-Za-z_$][\w$]*)\s*\([^()]*\)\s*(?::\s*[^{]+)?\{\s*$`)
)

var controlKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"with": true, "return": true, "else": true, "do": true, "function": true,
}

// IsFunctionStart reports whether a line opens a function or method
func IsFunctionStart(line string) bool {
	if functionKeywordPattern.MatchString(line) {
		return true
	}
	m := methodPattern.FindStringSubmatch(line)
	return m != nil && !controlKeywords[m[1]]
}

// CountMatches counts non-overlapping matches of re in text
func CountMatches(re *regexp.Regexp, text string) int {
	return len(re.FindAllStringIndex(text, -1))
}

// BraceDelta returns opening minus closing braces on a line
func BraceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
