package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quality-engine/src/model"
)

// Console styles using lipgloss.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	fileStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	dimStyle     = lipgloss.NewStyle().Faint(true)
	scoreLabel   = lipgloss.NewStyle().Width(16)
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow

	severityStyles = map[model.Severity]lipgloss.Style{
		model.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		model.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		model.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		model.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}

	gradeStyles = map[model.Grade]lipgloss.Style{
		model.GradeA: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		model.GradeB: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		model.GradeC: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		model.GradeD: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		model.GradeF: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
)

func renderGrade(g model.Grade) string {
	if style, ok := gradeStyles[g]; ok {
		return style.Render(string(g))
	}
	return string(g)
}

// generateConsole renders a terminal summary. Colors are dropped
// automatically when the output is not a terminal.
func (g *Generator) generateConsole(report *model.AnalysisReport) string {
	var b strings.Builder
	s := report.Summary

	b.WriteString(titleStyle.Render("Code Quality Report"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d files, %d issues, run %s", s.TotalFiles, s.TotalIssues, report.RunID)))
	b.WriteString("\n\n")

	for _, d := range model.Dimensions {
		b.WriteString(scoreLabel.Render(string(d)))
		b.WriteString(fmt.Sprintf("%5.1f\n", s.AverageMetrics.Score(d)))
	}
	b.WriteString(scoreLabel.Render("overall"))
	b.WriteString(fmt.Sprintf("%5.1f  grade %s\n", s.AverageMetrics.Overall, renderGrade(s.Grade)))

	for _, file := range report.Files {
		b.WriteString("\n")
		b.WriteString(fileStyle.Render(file.File))
		b.WriteString(fmt.Sprintf("  %s  %.1f\n", renderGrade(file.Grade), file.Metrics.Overall))

		issues, hidden := g.visibleIssues(file.Issues)
		for _, issue := range issues {
			sev := severityStyles[issue.Severity].Render(fmt.Sprintf("%-8s", issue.Severity))
			b.WriteString(fmt.Sprintf("  %s %4d:%-3d %s %s\n",
				sev, issue.Line, issue.Column, issue.Message, dimStyle.Render(issue.Rule)))
		}
		if hidden > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more issues", hidden)))
			b.WriteString("\n")
		}

		if g.cfg.IncludeSuggestions {
			for _, suggestion := range file.Suggestions {
				b.WriteString("  ")
				b.WriteString(suggestStyle.Render("> " + suggestion))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
