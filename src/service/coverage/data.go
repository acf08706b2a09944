package coverage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Totals holds the four coverage percentages
type Totals struct {
	Statements float64 `json:"statements" yaml:"statements"`
	Branches   float64 `json:"branches" yaml:"branches"`
	Functions  float64 `json:"functions" yaml:"functions"`
	Lines      float64 `json:"lines" yaml:"lines"`
}

// FileCoverage is the coverage of one file as recorded by the external tool
type FileCoverage struct {
	Totals    `yaml:",inline"`
	Uncovered []int `json:"uncovered" yaml:"uncovered"`
}

// Data is a coverage summary produced by an external test run
type Data struct {
	Totals Totals                  `json:"totals" yaml:"totals"`
	Files  map[string]FileCoverage `json:"files" yaml:"files"`
}

// LoadError is returned when a coverage file cannot be read or parsed
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading coverage data from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile reads coverage data from a YAML or JSON file
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var data Data
	// JSON is valid YAML, so one decoder handles both
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &data, nil
}
