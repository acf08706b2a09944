// Package complexity computes cyclomatic, cognitive and Halstead-style
// figures from source text by counting decision points.
package complexity

import (
	"math"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

// Counts holds the raw construct counts the figures are derived from
type Counts struct {
	Lines      int
	Functions  int
	Conditions int
	Switches   int
	Loops      int
}

// Count scans a source for functions and decision points. Keywords inside
// comments and string literals are not counted.
func Count(src *util.Source) Counts {
	counts := Counts{Lines: src.LineCount()}
	for _, line := range src.MaskedLines {
		if util.IsFunctionStart(line) {
			counts.Functions++
		}
	}
	counts.Conditions = util.CountMatches(util.ConditionPattern, src.Masked)
	counts.Switches = util.CountMatches(util.SwitchPattern, src.Masked)
	counts.Loops = util.CountMatches(util.LoopPattern, src.Masked)
	return counts
}

// Calculator derives a ComplexityReport using configured cognitive weights
type Calculator struct {
	cfg config.ComplexityConfig
}

// NewCalculator creates a new complexity calculator
func NewCalculator(cfg config.ComplexityConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate computes complexity figures. It is deterministic and never fails.
func (c *Calculator) Calculate(src *util.Source) model.ComplexityReport {
	counts := Count(src)

	vocabulary := counts.Functions + counts.Conditions + counts.Loops
	length := counts.Lines
	// vocabulary+1 keeps the logarithm finite for sources without constructs
	volume := float64(length) * math.Log2(float64(vocabulary+1))
	difficulty := float64(vocabulary) / 2

	return model.ComplexityReport{
		Cyclomatic: 1 + counts.Conditions + counts.Switches + counts.Loops,
		Cognitive: c.cfg.LineWeight*float64(counts.Lines) +
			c.cfg.FunctionWeight*float64(counts.Functions) +
			c.cfg.ConditionWeight*float64(counts.Conditions) +
			c.cfg.LoopWeight*float64(counts.Loops),
		Halstead: model.HalsteadMetrics{
			Vocabulary: vocabulary,
			Length:     length,
			Volume:     volume,
			Difficulty: difficulty,
			Effort:     volume * difficulty,
		},
	}
}
