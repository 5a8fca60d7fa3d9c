package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// writeReport writes fr to path, creating parent directories, or to stdout
// when path is empty or "-".
func writeReport(stdout io.Writer, path string, fr *report.FleetReport, f report.Format) (err error) {
	if path == "" || path == "-" {
		return report.Write(stdout, fr, f)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	if err := report.Write(out, fr, f); err != nil {
		return fmt.Errorf("failed to write %s report: %w", f, err)
	}
	log.WithField("path", path).Info("report written")
	return nil
}
