package cmd

import (
	"fmt"
	"os"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
		return
	}
}
