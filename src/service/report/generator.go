package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/service/analyzer"
	"quality-engine/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg   config.OutputConfig
	agent config.AgentConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig, agent config.AgentConfig) *Generator {
	return &Generator{cfg: cfg, agent: agent}
}

// Extension returns the file extension used for a format
func Extension(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	case "sarif":
		return "sarif"
	case "console", "text":
		return "txt"
	}
	return format
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, len(report.Files))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "sarif":
		return g.generateSARIF(report)
	case "console", "text":
		return g.generateConsole(report), nil
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// visibleIssues applies output.max_issues_per_file. Zero means no limit.
func (g *Generator) visibleIssues(issues []model.Issue) ([]model.Issue, int) {
	if g.cfg.MaxIssuesPerFile > 0 && len(issues) > g.cfg.MaxIssuesPerFile {
		return issues[:g.cfg.MaxIssuesPerFile], len(issues) - g.cfg.MaxIssuesPerFile
	}
	return issues, 0
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder
	s := report.Summary

	// Header
	sb.WriteString("# Code Quality Report\n\n")
	sb.WriteString(fmt.Sprintf("**Run:** %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Files Analyzed:** %d\n", s.TotalFiles))
	sb.WriteString(fmt.Sprintf("- **Total Issues:** %d\n", s.TotalIssues))
	sb.WriteString(fmt.Sprintf("- **Overall Score:** %.1f/100\n", s.AverageMetrics.Overall))
	sb.WriteString(fmt.Sprintf("- **Grade:** %s\n\n", s.Grade))

	sb.WriteString("### Scores\n\n")
	sb.WriteString("| Dimension | Score |\n")
	sb.WriteString("|-----------|-------|\n")
	for _, d := range model.Dimensions {
		sb.WriteString(fmt.Sprintf("| %s | %.1f |\n", d, s.AverageMetrics.Score(d)))
	}
	sb.WriteString("\n")

	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range model.Severities {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, s.BySeverity[sev]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Issues by Dimension\n\n")
	sb.WriteString("| Dimension | Count |\n")
	sb.WriteString("|-----------|-------|\n")
	for _, d := range model.Dimensions {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", d, s.ByDimension[d]))
	}
	sb.WriteString("\n")

	if len(s.HotspotFiles) > 0 {
		sb.WriteString("### Hotspot Files\n\n")
		sb.WriteString("| File | Issue Count | Grade |\n")
		sb.WriteString("|------|-------------|-------|\n")
		for _, hs := range s.HotspotFiles {
			sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", hs.FilePath, hs.IssueCount, hs.Grade))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Files\n\n")
	for _, file := range report.Files {
		sb.WriteString(fmt.Sprintf("### `%s` (grade %s)\n\n", file.File, file.Grade))

		if g.cfg.IncludeMetrics {
			m := file.Metrics
			sb.WriteString(fmt.Sprintf("- **Scores:** maintainability %.0f, reliability %.0f, security %.0f, performance %.0f, accessibility %.0f, overall %.1f\n",
				m.Maintainability, m.Reliability, m.Security, m.Performance, m.Accessibility, m.Overall))
			c := file.Complexity
			sb.WriteString(fmt.Sprintf("- **Complexity:** cyclomatic %d, cognitive %.1f, halstead volume %.1f\n",
				c.Cyclomatic, c.Cognitive, c.Halstead.Volume))
			cov := file.Coverage
			sb.WriteString(fmt.Sprintf("- **Coverage:** statements %.1f%%, branches %.1f%%, functions %.1f%%, lines %.1f%%\n",
				cov.Statements, cov.Branches, cov.Functions, cov.Lines))
		}

		for _, dup := range file.Duplications {
			sb.WriteString(fmt.Sprintf("- **Duplicate (%s, %.0f%%):** lines %s of `%s`\n",
				dup.Kind, dup.Similarity*100, lineRange(dup.Lines), dup.DuplicateOf))
		}

		issues, hidden := g.visibleIssues(file.Issues)
		if len(issues) > 0 {
			sb.WriteString("\n| Severity | Location | Rule | Message |\n")
			sb.WriteString("|----------|----------|------|---------|\n")
			for _, issue := range issues {
				sb.WriteString(fmt.Sprintf("| %s | %d:%d | `%s` | %s |\n",
					severityLabel(issue.Severity), issue.Line, issue.Column, issue.Rule, escapeTable(issue.Message)))
			}
			if hidden > 0 {
				sb.WriteString(fmt.Sprintf("\n_%d more issues not shown_\n", hidden))
			}
		}

		if g.cfg.IncludeSuggestions && len(file.Suggestions) > 0 {
			sb.WriteString("\n**Suggestions:**\n\n")
			for _, suggestion := range file.Suggestions {
				sb.WriteString(fmt.Sprintf("- %s\n", suggestion))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) generateSARIF(report *model.AnalysisReport) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    g.agent.Name,
						"version": g.agent.Version,
						"rules":   g.buildSARIFRules(),
					},
				},
				"automationDetails": map[string]any{"id": report.RunID},
				"results":           g.buildSARIFResults(report),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) buildSARIFRules() []map[string]any {
	catalog := analyzer.Catalog()
	rules := make([]map[string]any, 0, len(catalog))

	for _, rule := range catalog {
		rules = append(rules, map[string]any{
			"id":   rule.ID,
			"name": rule.Title,
			"shortDescription": map[string]any{
				"text": rule.Title,
			},
			"help": map[string]any{
				"text": rule.Fix,
			},
			"defaultConfiguration": map[string]any{
				"level": sarifLevel(rule.Type),
			},
			"properties": map[string]any{
				"dimension": rule.Dimension,
				"severity":  rule.Severity,
			},
		})
	}

	return rules
}

func (g *Generator) buildSARIFResults(report *model.AnalysisReport) []map[string]any {
	results := []map[string]any{}

	for _, file := range report.Files {
		for _, issue := range file.Issues {
			result := map[string]any{
				"ruleId":  issue.Rule,
				"level":   sarifLevel(issue.Type),
				"message": map[string]any{"text": issue.Message},
				"locations": []map[string]any{
					{
						"physicalLocation": map[string]any{
							"artifactLocation": map[string]any{
								"uri": issue.File,
							},
							"region": map[string]any{
								"startLine":   issue.Line,
								"startColumn": issue.Column,
							},
						},
					},
				},
			}

			if issue.Fix != "" {
				result["fixes"] = []map[string]any{
					{
						"description": map[string]any{"text": issue.Fix},
					},
				}
			}

			results = append(results, result)
		}
	}

	return results
}

func severityLabel(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "[CRITICAL]"
	case model.SeverityHigh:
		return "[HIGH]"
	case model.SeverityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}

func sarifLevel(t model.IssueType) string {
	switch t {
	case model.IssueTypeError:
		return "error"
	case model.IssueTypeWarning:
		return "warning"
	default:
		return "note"
	}
}

func escapeTable(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// lineRange renders "12-18" for a sorted line list
func lineRange(lines []int) string {
	switch len(lines) {
	case 0:
		return "?"
	case 1:
		return fmt.Sprint(lines[0])
	}
	return fmt.Sprintf("%d-%d", lines[0], lines[len(lines)-1])
}
