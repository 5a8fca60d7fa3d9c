package parse

import (
	"errors"
	"regexp"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

var (
	// "  1|10.1.2.3  | OK  | 1.2M| 3.4M| 4.6M| 200T/ 300T( 66%)|..."
	statusNodeRow = regexp.MustCompile(`^\s*(\d+)\s*\|\s*([^|]*?)\s*\|\s*([^|]*?)\s*\|(.*)$`)
	statusUsage   = regexp.MustCompile(`(\S+)\s*/\s*(\S+)\s*\(\s*([\d.]+%)\s*\)`)
	statusKey     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 /().-]*$`)
)

// Status parses `isi status`.
func Status(raw []byte) report.Section {
	info := &report.StatusInfo{Fields: map[string]string{}, Nodes: []report.NodeStatus{}}
	for _, line := range lines(raw) {
		if m := statusNodeRow.FindStringSubmatch(line); m != nil {
			n := report.NodeStatus{ID: m[1], Address: m[2], Health: m[3]}
			if u := statusUsage.FindStringSubmatch(m[4]); u != nil {
				n.Used, n.Size, n.UsedRatio = u[1], u[2], u[3]
			}
			info.Nodes = append(info.Nodes, n)
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !statusKey.MatchString(key) {
			continue
		}
		if _, seen := info.Fields[key]; !seen {
			info.Fields[key] = strings.TrimSpace(val)
		}
	}
	info.ClusterName = info.Fields["Cluster Name"]
	info.Health = strings.Trim(info.Fields["Cluster Health"], "[] ")
	if info.ClusterName == "" && len(info.Nodes) == 0 {
		return report.Failure(report.DomainStatus, report.StageParse, raw,
			errors.New("no cluster name or node rows found"))
	}
	return report.Section{Domain: report.DomainStatus, Status: info}
}
