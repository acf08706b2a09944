package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-engine/src/model"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	h := New()
	var out, errOut bytes.Buffer
	h.rootCmd.SetOut(&out)
	h.rootCmd.SetErr(&errOut)
	h.rootCmd.SetIn(strings.NewReader(stdin))
	h.rootCmd.SetArgs(args)
	err := h.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "quality-engine 1.0.0\n", out)
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "no-hardcoded-secrets")
	assert.Contains(t, out, "keyboard-accessible")
	assert.Contains(t, out, "RULE")
}

func TestAnalyzeStdinJSON(t *testing.T) {
	out, err := execute(t, `password = "x"`, "analyze", "--stdin", "--stdin-path", "secret.js", "-f", "json")
	require.NoError(t, err)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 1)
	assert.Equal(t, "secret.js", report.Files[0].File)
	assert.Equal(t, 75.0, report.Files[0].Metrics.Security)
}

func TestAnalyzeWritesReports(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.js"), []byte("const a = 1;\n"), 0644))
	outDir := filepath.Join(t.TempDir(), "reports")

	out, err := execute(t, "", "analyze", src, "-o", outDir, "-f", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "quality-report.md")

	data, err := os.ReadFile(filepath.Join(outDir, "quality-report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Code Quality Report")
}

func TestAnalyzeFailUnder(t *testing.T) {
	code := strings.Repeat("password = \"hunter2\"\n", 4)

	_, err := execute(t, code, "analyze", "--stdin", "--fail-under", "a")
	assert.ErrorContains(t, err, "grade B is below --fail-under A")
	assert.Equal(t, ExitBelowBar, exitCode(err))

	_, err = execute(t, code, "analyze", "--stdin", "--fail-under", "B", "-f", "json")
	assert.NoError(t, err)

	_, err = execute(t, code, "analyze", "--stdin", "--fail-under", "Z")
	assert.ErrorContains(t, err, "invalid grade")
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestDisableRuleFlag(t *testing.T) {
	out, err := execute(t, `password = "x"`,
		"--disable-rule", "no-hardcoded-secrets", "analyze", "--stdin", "-f", "json")
	require.NoError(t, err)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 1)
	assert.Empty(t, report.Files[0].Issues)
	assert.Equal(t, 100.0, report.Files[0].Metrics.Security)

	out, err = execute(t, "", "rules", "--disable-rule", "img-alt")
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "img-alt ") {
			assert.Contains(t, line, "disabled")
		}
	}

	_, err = execute(t, "", "--disable-rule", "no-such-rule", "rules")
	assert.ErrorContains(t, err, `unknown rule "no-such-rule"`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, exitCode(nil))
	assert.Equal(t, ExitFailure, exitCode(errors.New("boom")))
	wrapped := fmt.Errorf("run: %w", &ExitError{Code: ExitBelowBar, Err: errors.New("below")})
	assert.Equal(t, ExitBelowBar, exitCode(wrapped))
}

func TestAnalyzeWithProgress(t *testing.T) {
	src := t.TempDir()
	for _, name := range []string{"a.js", "b.js"} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte("const a = 1;\n"), 0644))
	}

	out, err := execute(t, "", "analyze", src, "--progress", "-f", "json")
	require.NoError(t, err)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Files, 2)
}
