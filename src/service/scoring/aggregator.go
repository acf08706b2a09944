// Package scoring turns dimension scores into an overall score, a letter
// grade and dimension-level suggestions.
package scoring

import (
	"quality-engine/src/config"
	"quality-engine/src/model"
)

// Aggregator computes the weighted overall score and grade
type Aggregator struct {
	weights map[model.Dimension]float64
	grades  config.GradeThresholds
}

// NewAggregator creates an aggregator from scoring config
func NewAggregator(cfg config.ScoringConfig) *Aggregator {
	w := cfg.Weights
	return &Aggregator{
		weights: map[model.Dimension]float64{
			model.DimensionMaintainability: w.Maintainability,
			model.DimensionReliability:     w.Reliability,
			model.DimensionSecurity:        w.Security,
			model.DimensionPerformance:     w.Performance,
			model.DimensionAccessibility:   w.Accessibility,
		},
		grades: cfg.Grades,
	}
}

// Overall returns the weighted mean of the five dimension scores. With equal
// weights this is the arithmetic mean.
func (a *Aggregator) Overall(m model.Metrics) float64 {
	var sum, total float64
	for _, d := range model.Dimensions {
		sum += a.weights[d] * m.Score(d)
		total += a.weights[d]
	}
	if total <= 0 {
		return 0
	}
	return sum / total
}

// Grade maps an overall score to a letter using inclusive lower bounds
func (a *Aggregator) Grade(overall float64) model.Grade {
	switch {
	case overall >= a.grades.A:
		return model.GradeA
	case overall >= a.grades.B:
		return model.GradeB
	case overall >= a.grades.C:
		return model.GradeC
	case overall >= a.grades.D:
		return model.GradeD
	}
	return model.GradeF
}

// Aggregate fills in the overall score and returns the grade
func (a *Aggregator) Aggregate(m *model.Metrics) model.Grade {
	m.Overall = a.Overall(*m)
	return a.Grade(m.Overall)
}
