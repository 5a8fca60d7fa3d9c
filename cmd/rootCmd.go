package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onefs-survey",
	Short: "Collect operational state from OneFS clusters over SSH",
	Long: "Connects to one or more OneFS (Isilon) clusters over SSH, runs a battery of read-only diagnostic " +
		"commands on each, parses the output and writes a consolidated fleet report.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogging(log, cfgLogLevel, cfgLogFormat, cmd.ErrOrStderr())
	},
}
