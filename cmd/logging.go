package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// configureLogging applies level and format to l. Progress and diagnostics go
// to w (stderr) so stdout stays free for reports.
func configureLogging(l *logrus.Logger, level, format string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	l.SetLevel(lvl)
	l.SetOutput(w)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
	return nil
}
