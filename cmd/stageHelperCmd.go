package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vallentes/OneFS-Dashboard/internal/fleet"
	"github.com/vallentes/OneFS-Dashboard/internal/helper"
	"github.com/vallentes/OneFS-Dashboard/internal/runner"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// stageHelperCmd installs the audit-rate helper on every target ahead of a
// collection run. Targets that already have it are left untouched.
var stageHelperCmd = &cobra.Command{
	Use:   "stage-helper",
	Short: "Install the audit-rate helper script on every cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		var inv *inventory
		var err error
		if cfgInventory != "" {
			if inv, err = loadInventory(cfgInventory); err != nil {
				return fmt.Errorf("failed to read inventory: %w", err)
			}
		}
		p, err := resolvePlan(inv)
		if err != nil {
			return err
		}

		opener := openerFunc(log)
		var failures int
		for _, t := range p.Targets {
			if err := stageOne(cmd.Context(), opener, t); err != nil {
				failures++
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Host %s: %v\n", t.Endpoint.Address(), err)
			}
		}
		if failures > 0 {
			return fmt.Errorf("stage-helper completed with %d failures", failures)
		}
		return nil
	},
}

func stageOne(ctx context.Context, opener session.Opener, t fleet.Target) error {
	sess, err := opener.Open(ctx, t.Endpoint)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()
	r := &runner.Runner{Log: log.WithField("target", t.Endpoint.Address())}
	res := r.EnsureHelper(ctx, sess, helper.AuditRates(t.HelperPath))
	if !res.OK() {
		return fmt.Errorf("helper %s: %w", res.Path, res.Err)
	}
	log.WithFields(logrus.Fields{"target": t.Endpoint.Address(), "path": res.Path, "presence": res.Presence}).Info("helper staged")
	return nil
}
