package util

import (
	"path/filepath"
	"regexp"
	"strings"

	"quality-engine/src/config"
)

// ExclusionMatcher decides which files a batch scan skips
type ExclusionMatcher struct {
	filePatterns []*regexp.Regexp
	files        []string
	extensions   map[string]bool
}

// NewExclusionMatcher creates a new exclusion matcher from config
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	m := &ExclusionMatcher{
		files: cfg.Files,
	}

	for _, p := range cfg.FilePatterns {
		if re, err := globToRegexp(p); err == nil {
			m.filePatterns = append(m.filePatterns, re)
		} else {
			Warn("Ignoring invalid exclusion pattern %q: %v", p, err)
		}
	}

	if len(cfg.Extensions) > 0 {
		m.extensions = make(map[string]bool, len(cfg.Extensions))
		for _, ext := range cfg.Extensions {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			m.extensions[strings.ToLower(ext)] = true
		}
	}

	return m
}

// Matches checks if a file path should be excluded
func (m *ExclusionMatcher) Matches(filePath string) bool {
	filePath = filepath.ToSlash(filePath)

	for _, f := range m.files {
		if filePath == filepath.ToSlash(f) {
			return true
		}
	}

	for _, re := range m.filePatterns {
		if re.MatchString(filePath) {
			return true
		}
	}

	return false
}

// AcceptsExtension reports whether a file has one of the configured source
// extensions. An empty extension list accepts everything.
func (m *ExclusionMatcher) AcceptsExtension(filePath string) bool {
	if m.extensions == nil {
		return true
	}
	return m.extensions[strings.ToLower(filepath.Ext(filePath))]
}

// globToRegexp converts a glob with ** support into an anchored regular expression.
// "**/" matches zero or more directories, "*" and "?" never cross a slash.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			sb.WriteString("(?:.*/)?")
			i += 2
		case strings.HasPrefix(pattern[i:], "**"):
			sb.WriteString(".*")
			i++
		case ch == '*':
			sb.WriteString("[^/]*")
		case ch == '?':
			sb.WriteString("[^/]")
		default:
			sb.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}

// MatchGlob matches a path against a glob pattern. Patterns starting with
// "**/" also match absolute paths.
func MatchGlob(pattern, path string) bool {
	re, err := globToRegexp(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(filepath.ToSlash(path))
}
