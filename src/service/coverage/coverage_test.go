package coverage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-engine/src/config"
	"quality-engine/src/model"
	"quality-engine/src/util"
)

const coverageYAML = `
totals:
  statements: 71.5
  branches: 60
  functions: 80
  lines: 72
files:
  src/app.ts:
    statements: 90
    branches: 50
    functions: 100
    lines: 88
    uncovered: [12, 13, 40]
  /ci/workspace/src/lib/util.ts:
    statements: 40
    branches: 20
    functions: 50
    lines: 45
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPlaceholderSummarizer(t *testing.T) {
	report := PlaceholderSummarizer{}.Summarize(util.NewSource("a.ts", ""))

	assert.Equal(t, 85.0, report.Statements)
	assert.Equal(t, 75.0, report.Branches)
	assert.Equal(t, 90.0, report.Functions)
	assert.Equal(t, 85.0, report.Lines)
	assert.NotNil(t, report.Uncovered)
	assert.Empty(t, report.Uncovered)
}

func TestLoadFileAndPassThrough(t *testing.T) {
	data, err := LoadFile(writeFile(t, "coverage.yaml", coverageYAML))
	require.NoError(t, err)

	s := NewPassThroughSummarizer(data)

	report := s.Summarize(util.NewSource("src/app.ts", ""))
	assert.Equal(t, 90.0, report.Statements)
	assert.Equal(t, 50.0, report.Branches)
	assert.Equal(t, []model.UncoveredFile{{File: "src/app.ts", Lines: []int{12, 13, 40}}}, report.Uncovered)

	report = s.Summarize(util.NewSource("src/lib/util.ts", ""))
	assert.Equal(t, 40.0, report.Statements)
	assert.Empty(t, report.Uncovered)

	report = s.Summarize(util.NewSource("src/other.ts", ""))
	assert.Equal(t, 71.5, report.Statements)
	assert.Equal(t, 72.0, report.Lines)
	assert.Empty(t, report.Uncovered)
}

func TestLoadFileJSON(t *testing.T) {
	content := `{"totals": {"statements": 10, "branches": 20, "functions": 30, "lines": 40},
	  "files": {"a.go": {"statements": 1, "branches": 2, "functions": 3, "lines": 4, "uncovered": [7]}}}`

	data, err := LoadFile(writeFile(t, "coverage.json", content))
	require.NoError(t, err)
	assert.Equal(t, 30.0, data.Totals.Functions)
	assert.Equal(t, []int{7}, data.Files["a.go"].Uncovered)
	assert.Equal(t, 4.0, data.Files["a.go"].Lines)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadFile(writeFile(t, "bad.yaml", "totals: [unclosed"))
	assert.ErrorAs(t, err, &loadErr)
}

func TestPassThroughNilData(t *testing.T) {
	report := NewPassThroughSummarizer(nil).Summarize(util.NewSource("a.ts", ""))
	assert.Equal(t, 0.0, report.Statements)
	assert.NotNil(t, report.Uncovered)
}

func testServiceConfig(url string) config.CoverageServiceConfig {
	return config.CoverageServiceConfig{
		URL:     url,
		Project: "web",
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:   3,
			BackoffFactor: 2,
			InitialDelay:  time.Millisecond,
			MaxDelay:      10 * time.Millisecond,
			RetryOnStatus: []int{503},
		},
	}
}

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/coverage", r.URL.Path)

		var req FetchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "web", req.Project)

		_, _ = w.Write([]byte(`{"totals": {"statements": 66}, "files": {"a.ts": {"lines": 50, "uncovered": [3]}}}`))
	}))
	defer server.Close()

	data, err := NewClient(testServiceConfig(server.URL)).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 66.0, data.Totals.Statements)
	assert.Equal(t, 50.0, data.Files["a.ts"].Lines)
}

func TestClientRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"totals": {"lines": 12}}`))
	}))
	defer server.Close()

	data, err := NewClient(testServiceConfig(server.URL)).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 12.0, data.Totals.Lines)
}

func TestClientDoesNotRetryOtherStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewClient(testServiceConfig(server.URL)).Fetch(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCalculateBackoff(t *testing.T) {
	c := NewClient(config.CoverageServiceConfig{Retry: config.RetryConfig{
		BackoffFactor: 2,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      300 * time.Millisecond,
	}})

	assert.Equal(t, 100*time.Millisecond, c.calculateBackoff(1))
	assert.Equal(t, 200*time.Millisecond, c.calculateBackoff(2))
	assert.Equal(t, 300*time.Millisecond, c.calculateBackoff(3))
}
