package complexity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"quality-engine/src/config"
	"quality-engine/src/util"
)

func newCalculator() *Calculator {
	return NewCalculator(config.DefaultConfig().Complexity)
}

func TestCalculateWithoutDecisionPoints(t *testing.T) {
	src := util.NewSource("a.ts", "const a = 1;\nconst b = 2;")

	report := newCalculator().Calculate(src)

	assert.Equal(t, 1, report.Cyclomatic)
	assert.InDelta(t, 0.2, report.Cognitive, 1e-9)
	assert.Equal(t, 0, report.Halstead.Vocabulary)
	assert.Equal(t, 2, report.Halstead.Length)
	assert.Equal(t, 0.0, report.Halstead.Volume)
	assert.False(t, math.IsInf(report.Halstead.Volume, 0))
	assert.Equal(t, 0.0, report.Halstead.Effort)
}

func TestCalculateEmptySource(t *testing.T) {
	report := newCalculator().Calculate(util.NewSource("a.ts", ""))

	assert.Equal(t, 1, report.Cyclomatic)
	assert.Equal(t, 0.0, report.Cognitive)
	assert.Equal(t, 0, report.Halstead.Length)
	assert.False(t, math.IsNaN(report.Halstead.Volume))
}

func TestCalculateCountsDecisionPoints(t *testing.T) {
	code := `function f(x) {
  if (x) {
    for (let i = 0; i < 3; i++) {}
  } else if (y) {}
  switch (x) {}
  while (z) {}
}`
	src := util.NewSource("a.js", code)

	counts := Count(src)
	assert.Equal(t, Counts{Lines: 7, Functions: 1, Conditions: 2, Switches: 1, Loops: 2}, counts)

	report := newCalculator().Calculate(src)
	assert.Equal(t, 6, report.Cyclomatic)
	assert.InDelta(t, 0.7+0.5+0.6+0.8, report.Cognitive, 1e-9)

	h := report.Halstead
	assert.Equal(t, 5, h.Vocabulary)
	assert.Equal(t, 7, h.Length)
	assert.InDelta(t, 7*math.Log2(6), h.Volume, 1e-9)
	assert.InDelta(t, 2.5, h.Difficulty, 1e-9)
	assert.InDelta(t, h.Volume*2.5, h.Effort, 1e-9)
}

func TestCalculateHonoursWeights(t *testing.T) {
	calc := NewCalculator(config.ComplexityConfig{LineWeight: 1})
	report := calc.Calculate(util.NewSource("a.go", "func main() {\n\tif ok {\n\t}\n}"))

	assert.Equal(t, 4.0, report.Cognitive)
	assert.Equal(t, 2, report.Cyclomatic)
}

func TestIsFunctionStart(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"function handle(event) {", true},
		{"export async function load() {", true},
		{"const f = (a) => {", true},
		{"func (s *Server) Start() error {", true},
		{"def run(self):", true},
		{"  render() {", true},
		{"  private save(item: Item): void {", true},
		{"  if (ready) {", false},
		{"  for (const x of xs) {", false},
		{"  } catch (err) {", false},
		{"const x = 1;", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, util.IsFunctionStart(tt.line))
		})
	}
}

func TestCountIgnoresCommentsAndStrings(t *testing.T) {
	code := "// retry if the request fails, for a while\nconst msg = \"switch if for while\";\n/* function f() { if (x) {} } */"
	src := util.NewSource("a.js", code)

	assert.Equal(t, Counts{Lines: 3}, Count(src))
	assert.Equal(t, 1, newCalculator().Calculate(src).Cyclomatic)
}
