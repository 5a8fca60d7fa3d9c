package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate an inventory YAML file without connecting",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgInventory == "" {
			return errors.New("--inventory is required (path to YAML)")
		}
		inv, err := loadInventory(cfgInventory)
		if err != nil {
			return fmt.Errorf("invalid inventory: %w", err)
		}
		p, err := resolvePlan(inv)
		if err != nil {
			return fmt.Errorf("invalid inventory: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Inventory OK: %d targets, domains: %s\n", len(p.Targets), joinDomains(p.Domains))
		return nil
	},
}
