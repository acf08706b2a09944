package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"quality-engine/src/controller"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		outputDir   string
		format      string
		coverage    string
		coverageURL string
		failUnder   string
		stdinPath   string
		parallel    bool
		stdin       bool
		progress    bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:          "analyze [paths...]",
		Short:        "Analyze source files for quality issues",
		Long:         "Runs all enabled analyzers against files and directories and generates a report",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var threshold model.Grade
			if failUnder != "" {
				g, err := model.ParseGrade(failUnder)
				if err != nil {
					return fmt.Errorf("--fail-under: %w", err)
				}
				threshold = g
			}

			if coverage != "" {
				h.cfg.Coverage.File = coverage
			}
			if coverageURL != "" {
				h.cfg.Coverage.Service.URL = coverageURL
			}
			if cmd.Flags().Changed("parallel") {
				h.cfg.Concurrency.ParallelAnalyzers = parallel
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			if progress {
				analysisCtrl.SetProgress(newBarProgress(cmd.ErrOrStderr()))
			}
			var (
				report *model.AnalysisReport
				err    error
			)
			if stdin {
				data, readErr := io.ReadAll(cmd.InOrStdin())
				if readErr != nil {
					return fmt.Errorf("reading stdin: %w", readErr)
				}
				util.Info("Analyzing %d bytes from stdin as %s", len(data), stdinPath)
				report, err = analysisCtrl.AnalyzeText(ctx, stdinPath, string(data))
			} else {
				if len(args) == 0 {
					args = []string{"."}
				}
				util.Info("Analyzing %v (timeout: %v)", args, timeout)
				report, err = analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{Paths: args})
			}
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "console"
				}
				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					return fmt.Errorf("generating report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}

			s := report.Summary
			fmt.Fprintf(cmd.ErrOrStderr(), "\nAnalysis complete:\n")
			fmt.Fprintf(cmd.ErrOrStderr(), "  Files: %d\n", s.TotalFiles)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Total issues: %d\n", s.TotalIssues)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Overall: %.1f/100 (grade %s)\n", s.AverageMetrics.Overall, s.Grade)

			if threshold != "" && s.Grade.WorseThan(threshold) {
				return &ExitError{
					Code: ExitBelowBar,
					Err:  fmt.Errorf("grade %s is below --fail-under %s", s.Grade, threshold),
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path (default: print to stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (console, json, markdown, sarif)")
	cmd.Flags().StringVar(&coverage, "coverage", "", "Coverage data file (YAML or JSON) to pass through")
	cmd.Flags().StringVar(&coverageURL, "coverage-url", "", "Coverage service base URL")
	cmd.Flags().StringVar(&failUnder, "fail-under", "", "Exit with an error when the overall grade is worse than this")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar on stderr while files are analyzed")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Run the dimension analyzers concurrently")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "Analyze source text read from stdin")
	cmd.Flags().StringVar(&stdinPath, "stdin-path", "stdin", "File path reported for --stdin input")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
