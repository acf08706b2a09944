package controller

import (
	"os"
	"path/filepath"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/service/report"
	"quality-engine/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes the report in every configured format and returns
// the written paths
func (c *ReportController) GenerateReports(analysisReport *model.AnalysisReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	reportGenerator := report.NewGenerator(c.cfg.Output, c.cfg.Agent)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := reportGenerator.Generate(analysisReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, &FileError{Path: filepath.Dir(outputPath), Op: "mkdir", Err: err}
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, &FileError{Path: outputPath, Op: "write", Err: err}
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(analysisReport *model.AnalysisReport, format string) (string, error) {
	return report.NewGenerator(c.cfg.Output, c.cfg.Agent).Generate(analysisReport, format)
}

func (c *ReportController) getOutputPath(format string) string {
	return filepath.Join(c.cfg.Output.OutputDir, "quality-report."+report.Extension(format))
}
