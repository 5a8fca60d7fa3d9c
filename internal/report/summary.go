package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title renders a domain name for humans: "disk_usage" -> "Disk Usage".
func (d Domain) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(d), "_", " "))
}

// WriteSummary writes a short plain-text overview of the run: a header with
// the run metadata and one block per target listing each domain's outcome.
func WriteSummary(w io.Writer, r *FleetReport) error {
	bw := bufio.NewWriter(w)
	if r.Name != "" {
		_, _ = fmt.Fprintf(bw, "Name: %s\n", r.Name)
	}
	if r.Description != "" {
		_, _ = fmt.Fprintf(bw, "Description: %s\n", r.Description)
	}
	_, _ = fmt.Fprintf(bw, "Run: %s\n", r.RunID)
	_, _ = fmt.Fprintf(bw, "Generated: %s\n", r.Generated.Format(time.RFC3339))
	c := r.Counts()
	_, _ = fmt.Fprintf(bw, "Targets: %d (ok %d, partial %d, unreachable %d)\n",
		len(r.Targets), c[StatusOK], c[StatusPartiallyFailed], c[StatusUnreachable])
	_, _ = fmt.Fprintln(bw, strings.Repeat("=", 80))
	for _, t := range r.Targets {
		_, _ = fmt.Fprintln(bw, strings.Repeat("-", 80))
		_, _ = fmt.Fprintf(bw, "Target: %s (%s)\n", t.Address, t.ID)
		_, _ = fmt.Fprintf(bw, "Status: %s\n", t.Status)
		if t.Error != "" {
			_, _ = fmt.Fprintf(bw, "Error: %s\n", t.Error)
		}
		for _, s := range t.Sections {
			_, _ = fmt.Fprintf(bw, "  %-20s %s\n", s.Domain.Title(), sectionLine(s))
		}
	}
	return bw.Flush()
}

func sectionLine(s Section) string {
	switch {
	case s.Failure != nil:
		return fmt.Sprintf("FAILED (%s): %s", s.Failure.Stage, s.Failure.Error)
	case s.Table != nil:
		if s.Table.Skipped > 0 {
			return fmt.Sprintf("%d rows, %d skipped", len(s.Table.Rows), s.Table.Skipped)
		}
		return fmt.Sprintf("%d rows", len(s.Table.Rows))
	case s.Status != nil:
		return fmt.Sprintf("%s health %s, %d nodes", s.Status.ClusterName, s.Status.Health, len(s.Status.Nodes))
	case s.Battery != nil:
		if !s.Battery.Supported {
			return "not supported"
		}
		if s.Battery.AllGood {
			return fmt.Sprintf("%d nodes good", len(s.Battery.Nodes))
		}
		return fmt.Sprintf("%d nodes, attention needed", len(s.Battery.Nodes))
	case s.ReadOnly != nil:
		if s.ReadOnly.AnyReadOnly {
			return "read-only nodes present"
		}
		return fmt.Sprintf("%d nodes read/write", len(s.ReadOnly.Nodes))
	case s.Time != nil:
		return fmt.Sprintf("%d clocks, %d ntp servers, skew %ds", len(s.Time.Nodes), len(s.Time.NTPServers), s.Time.MaxSkewSeconds)
	case s.Audit != nil:
		return fmt.Sprintf("%.4g evts/s over %d nodes", s.Audit.TotalAverage, len(s.Audit.Nodes))
	}
	return "empty"
}
