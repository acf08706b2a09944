// Package coverage passes externally computed test coverage through to
// reports. It never executes code.
package coverage

import (
	"path/filepath"
	"sort"
	"strings"

	"quality-engine/src/model"
	"quality-engine/src/util"
)

// Summarizer returns the coverage report for one file
type Summarizer interface {
	Summarize(src *util.Source) model.CoverageReport
}

// PlaceholderSummarizer returns fixed percentages for every file
type PlaceholderSummarizer struct{}

// Summarize returns the placeholder report
func (PlaceholderSummarizer) Summarize(*util.Source) model.CoverageReport {
	return model.CoverageReport{
		Statements: 85,
		Branches:   75,
		Functions:  90,
		Lines:      85,
		Uncovered:  []model.UncoveredFile{},
	}
}

// PassThroughSummarizer reports coverage data exactly as loaded. Files the
// data does not mention get the project totals and no uncovered lines.
type PassThroughSummarizer struct {
	data *Data
	keys []string
}

// NewPassThroughSummarizer wraps loaded coverage data. A nil data yields
// zero percentages.
func NewPassThroughSummarizer(data *Data) *PassThroughSummarizer {
	if data == nil {
		data = &Data{}
	}
	keys := make([]string, 0, len(data.Files))
	for k := range data.Files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &PassThroughSummarizer{data: data, keys: keys}
}

// Summarize looks up the file's entry in the coverage data
func (s *PassThroughSummarizer) Summarize(src *util.Source) model.CoverageReport {
	report := model.CoverageReport{Uncovered: []model.UncoveredFile{}}

	fc, ok := s.lookup(src.Path)
	if !ok {
		t := s.data.Totals
		report.Statements, report.Branches, report.Functions, report.Lines = t.Statements, t.Branches, t.Functions, t.Lines
		return report
	}

	report.Statements, report.Branches, report.Functions, report.Lines = fc.Statements, fc.Branches, fc.Functions, fc.Lines
	if len(fc.Uncovered) > 0 {
		report.Uncovered = append(report.Uncovered, model.UncoveredFile{
			File:  src.Path,
			Lines: append([]int(nil), fc.Uncovered...),
		})
	}
	return report
}

// lookup matches exactly first, then by path suffix since coverage tools
// often record absolute paths
func (s *PassThroughSummarizer) lookup(path string) (FileCoverage, bool) {
	path = filepath.ToSlash(path)
	if fc, ok := s.data.Files[path]; ok {
		return fc, true
	}
	for _, key := range s.keys {
		k := filepath.ToSlash(key)
		if strings.HasSuffix(k, "/"+path) || strings.HasSuffix(path, "/"+k) {
			return s.data.Files[key], true
		}
	}
	return FileCoverage{}, false
}
