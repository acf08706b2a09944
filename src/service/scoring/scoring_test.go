package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quality-engine/src/config"
	"quality-engine/src/model"
)

func metrics(m, r, s, p, a float64) model.Metrics {
	return model.Metrics{Maintainability: m, Reliability: r, Security: s, Performance: p, Accessibility: a}
}

func TestOverallIsMeanWithDefaultWeights(t *testing.T) {
	agg := NewAggregator(config.DefaultConfig().Scoring)

	assert.Equal(t, 100.0, agg.Overall(metrics(100, 100, 100, 100, 100)))
	assert.InDelta(t, 95.0, agg.Overall(metrics(100, 100, 75, 100, 100)), 1e-9)
	assert.InDelta(t, 62.0, agg.Overall(metrics(90, 80, 70, 40, 30)), 1e-9)
}

func TestOverallWeighted(t *testing.T) {
	cfg := config.DefaultConfig().Scoring
	cfg.Weights = config.DimensionWeights{Security: 3, Maintainability: 1}

	agg := NewAggregator(cfg)
	assert.InDelta(t, 25.0, agg.Overall(metrics(100, 0, 0, 100, 100)), 1e-9)
}

func TestGrade(t *testing.T) {
	agg := NewAggregator(config.DefaultConfig().Scoring)

	tests := []struct {
		overall float64
		want    model.Grade
	}{
		{100, model.GradeA},
		{90, model.GradeA},
		{89.99, model.GradeB},
		{80, model.GradeB},
		{79.5, model.GradeC},
		{70, model.GradeC},
		{60, model.GradeD},
		{59.9, model.GradeF},
		{0, model.GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, agg.Grade(tt.overall), "overall %v", tt.overall)
	}
}

func TestGradeCustomThresholds(t *testing.T) {
	cfg := config.DefaultConfig().Scoring
	cfg.Grades = config.GradeThresholds{A: 95, B: 85, C: 75, D: 65}

	agg := NewAggregator(cfg)
	assert.Equal(t, model.GradeB, agg.Grade(92))
	assert.Equal(t, model.GradeF, agg.Grade(64))
}

func TestAggregate(t *testing.T) {
	agg := NewAggregator(config.DefaultConfig().Scoring)
	m := metrics(100, 100, 75, 100, 100)

	grade := agg.Aggregate(&m)
	assert.Equal(t, model.GradeA, grade)
	assert.InDelta(t, 95.0, m.Overall, 1e-9)
}

func TestSuggestions(t *testing.T) {
	gen := NewSuggestionGenerator(70)

	assert.Empty(t, gen.Generate(metrics(100, 100, 100, 100, 100)))
	assert.NotNil(t, gen.Generate(metrics(100, 100, 100, 100, 100)))
	assert.Empty(t, gen.Generate(metrics(70, 70, 70, 70, 70)))

	assert.Equal(t, []string{"Add more error handling and null checks"},
		gen.Generate(metrics(100, 69.9, 100, 100, 100)))

	assert.Equal(t, []string{
		"Consider breaking down large functions and reducing complexity",
		"Review and fix security vulnerabilities",
		"Improve accessibility with proper ARIA labels and alt text",
	}, gen.Generate(metrics(10, 90, 0, 70, 50)))

	assert.Len(t, gen.Generate(metrics(0, 0, 0, 0, 0)), 5)
}
