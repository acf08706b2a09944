package scoring

import "quality-engine/src/model"

var suggestionText = map[model.Dimension]string{
	model.DimensionMaintainability: "Consider breaking down large functions and reducing complexity",
	model.DimensionReliability:     "Add more error handling and null checks",
	model.DimensionSecurity:        "Review and fix security vulnerabilities",
	model.DimensionPerformance:     "Optimize loops and prevent memory leaks",
	model.DimensionAccessibility:   "Improve accessibility with proper ARIA labels and alt text",
}

// SuggestionGenerator emits one fixed suggestion per weak dimension
type SuggestionGenerator struct {
	threshold float64
}

// NewSuggestionGenerator creates a generator that flags dimensions scoring
// strictly below threshold
func NewSuggestionGenerator(threshold float64) *SuggestionGenerator {
	return &SuggestionGenerator{threshold: threshold}
}

// Generate returns suggestions in dimension order. It never returns nil.
func (g *SuggestionGenerator) Generate(m model.Metrics) []string {
	suggestions := []string{}
	for _, d := range model.Dimensions {
		if m.Score(d) < g.threshold {
			suggestions = append(suggestions, suggestionText[d])
		}
	}
	return suggestions
}
