package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vallentes/OneFS-Dashboard/internal/collector"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the known collection domains and their commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "%-12s %-20s %-8s %s\n", "DOMAIN", "TITLE", "DEFAULT", "COMMAND")
		for _, d := range report.AllDomains {
			spec, ok := collector.Spec(d, cfgHelperPath)
			if !ok {
				continue
			}
			def := "no"
			if slices.Contains(report.DefaultDomains, d) {
				def = "yes"
			}
			_, _ = fmt.Fprintf(w, "%-12s %-20s %-8s %s\n", d, d.Title(), def, spec.Command.Line)
		}
		return nil
	},
}
