// Package duplication finds regions of a file that repeat code from other
// files in the same corpus.
package duplication

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

// Detector returns duplication candidates for one file
type Detector interface {
	Detect(src *util.Source) []model.DuplicationRecord
}

// NoopDetector never reports duplication. It is used for single-file runs
// where there is no corpus to compare against.
type NoopDetector struct{}

// Detect returns an empty list
func (NoopDetector) Detect(*util.Source) []model.DuplicationRecord {
	return []model.DuplicationRecord{}
}

// Corpus is the set of files duplicates are searched in. It is immutable
// once built.
type Corpus struct {
	files map[string][]line
	paths []string
}

// NewCorpus tokenizes every source into the corpus
func NewCorpus(sources ...*util.Source) *Corpus {
	c := &Corpus{files: make(map[string][]line, len(sources))}
	for _, src := range sources {
		if _, ok := c.files[src.Path]; !ok {
			c.paths = append(c.paths, src.Path)
		}
		c.files[src.Path] = tokenizeFile(src)
	}
	sort.Strings(c.paths)
	return c
}

// Paths returns the corpus file paths in sorted order
func (c *Corpus) Paths() []string {
	return c.paths
}

type windowRef struct {
	path  string
	start int
}

// WindowDetector hashes fixed-size windows of normalized lines and matches
// them against every other file in the corpus
type WindowDetector struct {
	corpus *Corpus
	cfg    config.DuplicationConfig
	index  map[uint64][]windowRef
}

// NewWindowDetector indexes the corpus with windows of cfg.MinLines lines
func NewWindowDetector(corpus *Corpus, cfg config.DuplicationConfig) *WindowDetector {
	d := &WindowDetector{
		corpus: corpus,
		cfg:    cfg,
		index:  make(map[uint64][]windowRef),
	}

	windows := 0
	for _, path := range corpus.paths {
		lines := corpus.files[path]
		for start := 0; start+cfg.MinLines <= len(lines); start++ {
			h := windowHash(lines[start : start+cfg.MinLines])
			d.index[h] = append(d.index[h], windowRef{path: path, start: start})
			windows++
		}
	}

	util.Debug("Duplication index: %d windows across %d files", windows, len(corpus.paths))
	return d
}

func windowHash(lines []line) uint64 {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.normalized
	}
	return xxhash.Sum64String(strings.Join(parts, "\n"))
}

// regionKey groups window matches lying on the same diagonal of one file pair
type regionKey struct {
	path   string
	offset int
}

// Detect returns the regions of src that duplicate other corpus files,
// ordered by duplicated file and line
func (d *WindowDetector) Detect(src *util.Source) []model.DuplicationRecord {
	records := []model.DuplicationRecord{}
	if !d.cfg.Enabled {
		return records
	}

	lines := tokenizeFile(src)
	n := d.cfg.MinLines

	hits := make(map[regionKey][]int)
	var keys []regionKey
	for start := 0; start+n <= len(lines); start++ {
		window := lines[start : start+n]
		for _, ref := range d.index[windowHash(window)] {
			if ref.path == src.Path {
				continue
			}
			other := d.corpus.files[ref.path][ref.start : ref.start+n]
			if !sameShape(window, other) {
				continue // hash collision
			}
			key := regionKey{path: ref.path, offset: ref.start - start}
			if _, ok := hits[key]; !ok {
				keys = append(keys, key)
			}
			hits[key] = append(hits[key], start)
		}
	}

	for _, key := range keys {
		other := d.corpus.files[key.path]
		starts := hits[key]

		// consecutive or overlapping windows on a diagonal form one region
		first, last := starts[0], starts[0]
		flush := func() {
			end := last + n
			if rec, ok := d.buildRecord(src.Path, lines[first:end], key.path, other[first+key.offset:end+key.offset]); ok {
				records = append(records, rec)
			}
		}
		for _, s := range starts[1:] {
			if s > last+n {
				flush()
				first = s
			}
			last = s
		}
		flush()
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DuplicateOf != records[j].DuplicateOf {
			return records[i].DuplicateOf < records[j].DuplicateOf
		}
		return records[i].Lines[0] < records[j].Lines[0]
	})
	return records
}

func sameShape(a, b []line) bool {
	for i := range a {
		if a[i].normalized != b[i].normalized {
			return false
		}
	}
	return true
}

func (d *WindowDetector) buildRecord(path string, region []line, otherPath string, otherRegion []line) (model.DuplicationRecord, bool) {
	ratio := similarity(region, otherRegion)
	kind, ok := d.classify(ratio)
	if !ok {
		return model.DuplicationRecord{}, false
	}

	rec := model.DuplicationRecord{
		File:        path,
		DuplicateOf: otherPath,
		Similarity:  ratio,
		Kind:        kind,
	}
	for i := range region {
		rec.Lines = append(rec.Lines, region[i].number)
		rec.DuplicateLines = append(rec.DuplicateLines, otherRegion[i].number)
	}
	return rec, true
}

func (d *WindowDetector) classify(ratio float64) (model.DuplicationKind, bool) {
	switch {
	case ratio >= d.cfg.ExactThreshold:
		return model.DuplicationExact, true
	case ratio >= d.cfg.SimilarThreshold:
		return model.DuplicationSimilar, true
	case ratio >= d.cfg.RefactoredThreshold:
		return model.DuplicationRefactored, true
	}
	return "", false
}

// similarity is the share of positionally equal concrete tokens across two
// aligned regions, in [0, 1]
func similarity(a, b []line) float64 {
	var same, total int
	for i := range a {
		ta, tb := a[i].tokens, b[i].tokens
		longest := max(len(ta), len(tb))
		total += longest
		for k := 0; k < min(len(ta), len(tb)); k++ {
			if ta[k] == tb[k] {
				same++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(same) / float64(total)
}
