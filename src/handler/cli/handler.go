package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quality-engine/src/config"
	"quality-engine/src/service/analyzer"
	"quality-engine/src/util"
)

// Exit codes
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitBelowBar = 2
)

// ExitError carries a process exit code up to Run
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Handler owns the command tree and the configuration it runs with
type Handler struct {
	cfg           *config.Config
	configPath    string
	logLevel      string
	disabledRules []string
	rootCmd       *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.rootCmd = &cobra.Command{
		Use:           "quality-engine",
		Short:         "Static code quality analysis",
		Long:          "Scores source files on maintainability, reliability, security, performance and accessibility",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.prepare()
		},
	}

	flags := h.rootCmd.PersistentFlags()
	flags.StringVarP(&h.configPath, "config", "c", "", "Path to configuration file")
	flags.StringVar(&h.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
	flags.StringSliceVar(&h.disabledRules, "disable-rule", nil, "Rule id to disable, repeatable")

	h.rootCmd.AddCommand(h.analyzeCmd(), h.rulesCmd(), h.versionCmd())
	return h
}

// prepare loads the configuration, applies flag overrides and configures
// the default logger
func (h *Handler) prepare() error {
	cfg, err := config.NewLoader().Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if h.logLevel != "" {
		cfg.Logging.Level = h.logLevel
	}
	for _, id := range h.disabledRules {
		if _, ok := analyzer.LookupRule(id); !ok {
			return fmt.Errorf("--disable-rule: unknown rule %q", id)
		}
		if !cfg.IsRuleDisabled(id) {
			cfg.Rules.Disabled = append(cfg.Rules.Disabled, id)
		}
	}

	h.cfg = cfg
	util.SetDefaultLogger(cfg.Logging)
	util.Debug("Configuration loaded, %d rules disabled", len(cfg.Rules.Disabled))
	return nil
}

// Execute runs the command tree
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// exitCode maps a command error to the process exit code
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Run is the main entry point
func Run() {
	err := New().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}
