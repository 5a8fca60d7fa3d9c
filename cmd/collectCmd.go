package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vallentes/OneFS-Dashboard/internal/collector"
	"github.com/vallentes/OneFS-Dashboard/internal/fleet"
	"github.com/vallentes/OneFS-Dashboard/internal/metrics"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// collectCmd executes the primary workflow: resolve targets from the
// inventory and flags, collect all of them concurrently, and write the
// fleet report. Unreachable clusters are part of the report; the command
// only fails outright when none could be reached.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect the domain battery from every cluster and write the fleet report",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(cfgFormat)
		if err != nil {
			return err
		}
		var inv *inventory
		if cfgInventory != "" {
			if inv, err = loadInventory(cfgInventory); err != nil {
				return fmt.Errorf("failed to read inventory: %w", err)
			}
		}
		p, err := resolvePlan(inv)
		if err != nil {
			return err
		}

		rec := metrics.New()
		agg := &fleet.Aggregator{
			Collector: &collector.Collector{
				Opener:         openerFunc(log),
				Domains:        p.Domains,
				CommandTimeout: cfgCmdTimeout,
				Log:            log,
				Metrics:        rec,
			},
			Config: fleet.Config{
				Name:        p.Name,
				Description: p.Description,
				Parallelism: cfgParallelism,
				DialRate:    cfgDialRate,
			},
			Log: log,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.WithFields(logrus.Fields{
			"targets": len(p.Targets),
			"domains": joinDomains(p.Domains),
		}).Info("collecting")
		fr, err := agg.Collect(ctx, p.Targets)
		if err != nil {
			return fmt.Errorf("collection aborted: %w", err)
		}

		if err := writeReport(cmd.OutOrStdout(), cfgOutPath, fr, format); err != nil {
			return err
		}
		if cfgSummary {
			if err := report.WriteSummary(cmd.ErrOrStderr(), fr); err != nil {
				return fmt.Errorf("failed writing summary: %w", err)
			}
		}
		if cfgMetricsOut != "" {
			if err := rec.WriteTextfile(cfgMetricsOut); err != nil {
				return fmt.Errorf("failed writing metrics: %w", err)
			}
		}
		if n := fr.Counts()[report.StatusUnreachable]; n == len(fr.Targets) {
			return fmt.Errorf("all %d targets unreachable", n)
		}
		return nil
	},
}

func joinDomains(ds []report.Domain) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}
