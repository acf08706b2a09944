package controller

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/service/coverage"
	"quality-engine/src/service/duplication"
	"quality-engine/src/service/scoring"
	"quality-engine/src/util"
)

// AnalysisController orchestrates a batch analysis over files on disk
type AnalysisController struct {
	cfg      *config.Config
	opts     []EngineOption
	progress Progress
}

// Progress observes a batch run. Advance is called from worker goroutines.
type Progress interface {
	Start(total int)
	Advance()
	Finish()
}

// NewAnalysisController creates a new analysis controller. Options are
// passed to the engine that analyzes each file.
func NewAnalysisController(cfg *config.Config, opts ...EngineOption) *AnalysisController {
	return &AnalysisController{cfg: cfg, opts: opts}
}

// SetProgress attaches a progress observer to later runs
func (c *AnalysisController) SetProgress(p Progress) {
	c.progress = p
}

// AnalyzeRequest represents a request to analyze files and directories
type AnalyzeRequest struct {
	Paths []string
}

// Analyze runs the full analysis pipeline
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisReport, error) {
	startTime := time.Now()
	util.Info("Starting analysis of %d path(s)", len(req.Paths))

	files, err := c.collectFiles(req.Paths)
	if err != nil {
		return nil, err
	}
	util.Debug("Collected %d source files", len(files))

	sources, err := c.readSources(ctx, files)
	if err != nil {
		return nil, err
	}

	report, err := c.analyzeSources(ctx, sources)
	if err != nil {
		return nil, err
	}

	util.Info("Analysis complete: %d files, %d issues, grade %s (took %v)",
		report.Summary.TotalFiles, report.Summary.TotalIssues, report.Summary.Grade, time.Since(startTime))
	return report, nil
}

// AnalyzeText analyzes in-memory text as a batch of one file
func (c *AnalysisController) AnalyzeText(ctx context.Context, filePath, text string) (*model.AnalysisReport, error) {
	return c.analyzeSources(ctx, []*util.Source{util.NewSource(filePath, text)})
}

func (c *AnalysisController) analyzeSources(ctx context.Context, sources []*util.Source) (*model.AnalysisReport, error) {
	summarizer, err := c.coverageSummarizer(ctx)
	if err != nil {
		return nil, err
	}

	// a template engine resolves the caller's clock and id options
	template := NewEngine(c.cfg, c.opts...)
	runID := uuid.NewString()
	if template.newID != nil {
		runID = template.newID()
	}
	generatedAt := template.now()

	opts := []EngineOption{
		WithCoverageSummarizer(summarizer),
		WithDuplicationDetector(c.duplicationDetector(sources)),
	}
	opts = append(opts, c.opts...)
	opts = append(opts, WithIDGenerator(func() string { return runID }))
	engine := NewEngine(c.cfg, opts...)

	if c.progress != nil {
		c.progress.Start(len(sources))
		defer c.progress.Finish()
	}

	reports := make([]model.Report, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency.MaxParallelFiles)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = engine.Analyze(src)
			if c.progress != nil {
				c.progress.Advance()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		util.Error("Analysis aborted: %v", err)
		return nil, err
	}

	return &model.AnalysisReport{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Files:       reports,
		Summary:     c.generateSummary(reports),
	}, nil
}

// collectFiles expands directories, applies exclusions and returns a sorted,
// de-duplicated file list. Files named explicitly skip the filters.
func (c *AnalysisController) collectFiles(paths []string) ([]string, error) {
	matcher := util.NewExclusionMatcher(c.cfg.Exclusions)
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	excluded := 0
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, &FileError{Path: root, Op: "stat", Err: err}
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &FileError{Path: path, Op: "walk", Err: err}
			}
			rel, _ := filepath.Rel(root, path)
			if d.IsDir() {
				if path != root && matcher.Matches(filepath.ToSlash(rel)+"/") {
					excluded++
					return filepath.SkipDir
				}
				return nil
			}
			if matcher.Matches(rel) || matcher.Matches(path) || !matcher.AcceptsExtension(path) {
				excluded++
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	util.Debug("File collection: %d included, %d excluded", len(files), excluded)
	sort.Strings(files)
	return files, nil
}

func (c *AnalysisController) readSources(ctx context.Context, files []string) ([]*util.Source, error) {
	sources := make([]*util.Source, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &FileError{Path: path, Op: "read", Err: err}
		}
		sources = append(sources, util.NewSource(filepath.ToSlash(path), string(data)))
	}
	return sources, nil
}

func (c *AnalysisController) duplicationDetector(sources []*util.Source) duplication.Detector {
	if !c.cfg.Duplication.Enabled || len(sources) < 2 {
		return duplication.NoopDetector{}
	}
	return duplication.NewWindowDetector(duplication.NewCorpus(sources...), c.cfg.Duplication)
}

// coverageSummarizer prefers a coverage file, then the coverage service,
// then placeholder figures
func (c *AnalysisController) coverageSummarizer(ctx context.Context) (coverage.Summarizer, error) {
	cov := c.cfg.Coverage
	switch {
	case cov.File != "":
		util.Debug("Loading coverage data from %s", cov.File)
		data, err := coverage.LoadFile(cov.File)
		if err != nil {
			return nil, err
		}
		return coverage.NewPassThroughSummarizer(data), nil
	case cov.Service.URL != "":
		data, err := coverage.NewClient(cov.Service).Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return coverage.NewPassThroughSummarizer(data), nil
	case cov.Placeholder:
		return coverage.PlaceholderSummarizer{}, nil
	}
	return coverage.NewPassThroughSummarizer(nil), nil
}

func (c *AnalysisController) generateSummary(reports []model.Report) model.ReportSummary {
	summary := model.ReportSummary{
		TotalFiles:   len(reports),
		BySeverity:   make(map[model.Severity]int),
		ByDimension:  make(map[model.Dimension]int),
		ByRule:       make(map[string]int),
		GradeCounts:  make(map[model.Grade]int),
		HotspotFiles: []model.FileHotspot{},
	}

	var files []model.FileHotspot
	for _, r := range reports {
		summary.TotalIssues += len(r.Issues)
		summary.GradeCounts[r.Grade]++
		for _, issue := range r.Issues {
			summary.BySeverity[issue.Severity]++
			summary.ByDimension[issue.Dimension]++
			summary.ByRule[issue.Rule]++
		}
		for _, d := range model.Dimensions {
			summary.AverageMetrics.SetScore(d, summary.AverageMetrics.Score(d)+r.Metrics.Score(d))
		}
		if len(r.Issues) > 0 {
			files = append(files, model.FileHotspot{FilePath: r.File, IssueCount: len(r.Issues), Grade: r.Grade})
		}
	}

	aggregator := scoring.NewAggregator(c.cfg.Scoring)
	if len(reports) == 0 {
		// nothing analyzed means nothing found
		for _, d := range model.Dimensions {
			summary.AverageMetrics.SetScore(d, 100)
		}
	} else {
		for _, d := range model.Dimensions {
			summary.AverageMetrics.SetScore(d, summary.AverageMetrics.Score(d)/float64(len(reports)))
		}
	}
	summary.Grade = aggregator.Aggregate(&summary.AverageMetrics)

	// Sort by count descending
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].IssueCount != files[j].IssueCount {
			return files[i].IssueCount > files[j].IssueCount
		}
		return files[i].FilePath < files[j].FilePath
	})
	topN := min(c.cfg.Output.HotspotsTopN, len(files))
	if topN > 0 {
		summary.HotspotFiles = files[:topN]
	}

	return summary
}
