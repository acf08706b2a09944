package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/service/analyzer"
)

func sampleReport() *model.AnalysisReport {
	issues := []model.Issue{
		{
			ID: "hardcoded-secret-0", Type: model.IssueTypeError, Severity: model.SeverityHigh,
			Dimension: model.DimensionSecurity, File: "src/app.ts", Line: 3, Column: 5,
			Message: "Hardcoded secret detected", Rule: "no-hardcoded-secrets",
			Fix: "Load secrets from the environment or a secret store", Effort: model.EffortLow,
		},
		{
			ID: "magic-number-0", Type: model.IssueTypeInfo, Severity: model.SeverityLow,
			Dimension: model.DimensionMaintainability, File: "src/app.ts", Line: 9, Column: 12,
			Message: "Magic number 1000 should be a named constant", Rule: "no-magic-numbers",
			Effort: model.EffortLow,
		},
	}
	metrics := model.Metrics{Maintainability: 98, Reliability: 100, Security: 75, Performance: 100, Accessibility: 100, Overall: 94.6}

	return &model.AnalysisReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Summary: model.ReportSummary{
			TotalFiles:     1,
			TotalIssues:    2,
			BySeverity:     map[model.Severity]int{model.SeverityHigh: 1, model.SeverityLow: 1},
			ByDimension:    map[model.Dimension]int{model.DimensionSecurity: 1, model.DimensionMaintainability: 1},
			ByRule:         map[string]int{"no-hardcoded-secrets": 1, "no-magic-numbers": 1},
			AverageMetrics: metrics,
			Grade:          model.GradeA,
			GradeCounts:    map[model.Grade]int{model.GradeA: 1},
			HotspotFiles:   []model.FileHotspot{{FilePath: "src/app.ts", IssueCount: 2, Grade: model.GradeA}},
		},
		Files: []model.Report{
			{
				RunID:        "run-1",
				File:         "src/app.ts",
				Metrics:      metrics,
				Issues:       issues,
				Duplications: []model.DuplicationRecord{{File: "src/app.ts", Lines: []int{20, 21, 24}, DuplicateOf: "src/old.ts", Similarity: 1, Kind: model.DuplicationExact}},
				Suggestions:  []string{"Review and fix security vulnerabilities"},
				Grade:        model.GradeA,
			},
		},
	}
}

func newGenerator(mutate func(*config.OutputConfig)) *Generator {
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg.Output)
	}
	return NewGenerator(cfg.Output, cfg.Agent)
}

func TestGenerateJSON(t *testing.T) {
	out, err := newGenerator(nil).Generate(sampleReport(), "json")
	require.NoError(t, err)

	var decoded model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "no-hardcoded-secrets", decoded.Files[0].Issues[0].Rule)
	assert.Equal(t, model.GradeA, decoded.Summary.Grade)
}

func TestGenerateMarkdown(t *testing.T) {
	out, err := newGenerator(nil).Generate(sampleReport(), "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Code Quality Report")
	assert.Contains(t, out, "**Generated:** 2025-03-01 12:00:00 UTC")
	assert.Contains(t, out, "- **Grade:** A")
	assert.Contains(t, out, "| security | 75.0 |")
	assert.Contains(t, out, "| high | 1 |")
	assert.Contains(t, out, "| src/app.ts | 2 | A |")
	assert.Contains(t, out, "### `src/app.ts` (grade A)")
	assert.Contains(t, out, "| [HIGH] | 3:5 | `no-hardcoded-secrets` | Hardcoded secret detected |")
	assert.Contains(t, out, "lines 20-24 of `src/old.ts`")
	assert.Contains(t, out, "- Review and fix security vulnerabilities")
}

func TestGenerateMarkdownRespectsOutputOptions(t *testing.T) {
	g := newGenerator(func(o *config.OutputConfig) {
		o.MaxIssuesPerFile = 1
		o.IncludeSuggestions = false
		o.IncludeMetrics = false
	})

	out, err := g.Generate(sampleReport(), "md")
	require.NoError(t, err)

	assert.Contains(t, out, "_1 more issues not shown_")
	assert.NotContains(t, out, "no-magic-numbers")
	assert.NotContains(t, out, "**Suggestions:**")
	assert.NotContains(t, out, "**Complexity:**")
}

func TestGenerateSARIF(t *testing.T) {
	out, err := newGenerator(nil).Generate(sampleReport(), "sarif")
	require.NoError(t, err)

	var sarif struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string           `json:"name"`
					Rules []map[string]any `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string           `json:"ruleId"`
				Level  string           `json:"level"`
				Fixes  []map[string]any `json:"fixes"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sarif))

	assert.Equal(t, "2.1.0", sarif.Version)
	require.Len(t, sarif.Runs, 1)
	run := sarif.Runs[0]
	assert.Equal(t, "quality-engine", run.Tool.Driver.Name)
	assert.Len(t, run.Tool.Driver.Rules, len(analyzer.Catalog()))

	require.Len(t, run.Results, 2)
	assert.Equal(t, "no-hardcoded-secrets", run.Results[0].RuleID)
	assert.Equal(t, "error", run.Results[0].Level)
	assert.Len(t, run.Results[0].Fixes, 1)
	assert.Equal(t, "note", run.Results[1].Level)
	assert.Empty(t, run.Results[1].Fixes)
}

func TestGenerateConsole(t *testing.T) {
	out, err := newGenerator(nil).Generate(sampleReport(), "console")
	require.NoError(t, err)

	assert.Contains(t, out, "Code Quality Report")
	assert.Contains(t, out, "src/app.ts")
	assert.Contains(t, out, "Hardcoded secret detected")
	assert.Contains(t, out, "no-hardcoded-secrets")
	assert.Contains(t, out, "> Review and fix security vulnerabilities")
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := newGenerator(nil).Generate(sampleReport(), "xml")
	assert.ErrorContains(t, err, "unsupported format: xml")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "json", Extension("json"))
	assert.Equal(t, "md", Extension("markdown"))
	assert.Equal(t, "md", Extension("md"))
	assert.Equal(t, "sarif", Extension("sarif"))
	assert.Equal(t, "txt", Extension("console"))
}
