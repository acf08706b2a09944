package duplication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

const totalJS = `function total(items) {
  let sum = 0;
  for (const item of items) {
    sum += item.price * item.qty;
  }
  return sum;
}
`

const renamedJS = `// same logic, new names
function total(rows) {
  let acc = 0;
  for (const row of rows) {
    acc += row.price * row.qty;
  }
  return acc;
}
`

const unrelatedJS = `export function greet(name) {
  return "hello " + name;
}
`

func newDetector(cfg config.DuplicationConfig, sources ...*util.Source) *WindowDetector {
	return NewWindowDetector(NewCorpus(sources...), cfg)
}

func TestNoopDetector(t *testing.T) {
	records := NoopDetector{}.Detect(util.NewSource("a.js", totalJS))
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestTokenizeFileDropsInsignificantLines(t *testing.T) {
	lines := tokenizeFile(util.NewSource("a.js", totalJS))

	numbers := make([]int, len(lines))
	for i, l := range lines {
		numbers[i] = l.number
	}
	assert.Equal(t, []int{1, 2, 3, 4, 6}, numbers)
	assert.Equal(t, "let I = N ;", lines[1].normalized)
}

func TestDetectExactCopy(t *testing.T) {
	a := util.NewSource("a.js", totalJS)
	b := util.NewSource("b.js", totalJS)
	d := newDetector(config.DefaultConfig().Duplication, a, b)

	records := d.Detect(a)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "a.js", rec.File)
	assert.Equal(t, "b.js", rec.DuplicateOf)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, rec.Lines)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, rec.DuplicateLines)
	assert.Equal(t, 1.0, rec.Similarity)
	assert.Equal(t, model.DuplicationExact, rec.Kind)
}

func TestDetectRenamedCopy(t *testing.T) {
	a := util.NewSource("a.js", totalJS)
	c := util.NewSource("c.js", renamedJS)
	d := newDetector(config.DefaultConfig().Duplication, a, c)

	records := d.Detect(a)

	require.Len(t, records, 1)
	assert.Equal(t, model.DuplicationRefactored, records[0].Kind)
	assert.InDelta(t, 25.0/33.0, records[0].Similarity, 1e-9)
	assert.Equal(t, []int{2, 3, 4, 5, 7}, records[0].DuplicateLines)
}

func TestDetectDropsBelowThreshold(t *testing.T) {
	cfg := config.DefaultConfig().Duplication
	cfg.RefactoredThreshold = 0.8
	cfg.SimilarThreshold = 0.9

	a := util.NewSource("a.js", totalJS)
	d := newDetector(cfg, a, util.NewSource("c.js", renamedJS))

	assert.Empty(t, d.Detect(a))
}

func TestDetectIgnoresSelfAndUnrelated(t *testing.T) {
	a := util.NewSource("a.js", totalJS)
	d := newDetector(config.DefaultConfig().Duplication, a, util.NewSource("u.js", unrelatedJS))

	records := d.Detect(a)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDetectDisabled(t *testing.T) {
	cfg := config.DefaultConfig().Duplication
	cfg.Enabled = false

	a := util.NewSource("a.js", totalJS)
	d := newDetector(cfg, a, util.NewSource("b.js", totalJS))

	assert.Empty(t, d.Detect(a))
}

func TestDetectOrdersByDuplicatedFile(t *testing.T) {
	a := util.NewSource("a.js", totalJS)
	d := newDetector(config.DefaultConfig().Duplication,
		util.NewSource("z.js", totalJS), a, util.NewSource("m.js", totalJS))

	records := d.Detect(a)

	require.Len(t, records, 2)
	assert.Equal(t, "m.js", records[0].DuplicateOf)
	assert.Equal(t, "z.js", records[1].DuplicateOf)
	assert.Equal(t, []string{"a.js", "m.js", "z.js"}, d.corpus.Paths())
}
