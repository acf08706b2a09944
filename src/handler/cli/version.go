package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quality-engine/src/service/analyzer"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RULE\tDIMENSION\tSEVERITY\tSTATUS\tDESCRIPTION")
			for _, rule := range analyzer.Catalog() {
				status := "enabled"
				if h.cfg.IsRuleDisabled(rule.ID) {
					status = "disabled"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", rule.ID, rule.Dimension, rule.Severity, status, rule.Title)
			}
			w.Flush()
		},
	}
}
