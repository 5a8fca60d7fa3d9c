package parse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// AuditRate parses the audit-rate helper output: one block per node
// followed by a "Total average:" line. Output cut short before the total is
// still returned, with Complete=false.
func AuditRate(raw []byte) report.Section {
	info := &report.AuditRate{Nodes: []report.NodeAuditRate{}}
	var cur *report.NodeAuditRate
	for _, l := range lines(raw) {
		key, val, ok := strings.Cut(strings.TrimSpace(l), ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		switch k := strings.ToLower(strings.TrimSpace(key)); {
		case strings.HasPrefix(k, "node ") && val == "":
			info.Nodes = append(info.Nodes, report.NodeAuditRate{Node: strings.TrimSpace(key[len("node "):])})
			cur = &info.Nodes[len(info.Nodes)-1]
		case k == "total average":
			if v, ok := number(val); ok {
				info.TotalAverage = v
				info.Complete = true
			}
		case cur == nil:
		case k == "seconds":
			if v, err := strconv.ParseInt(firstField(val), 10, 64); err == nil {
				cur.Seconds = v
			}
		case k == "events":
			if v, err := strconv.ParseInt(firstField(val), 10, 64); err == nil {
				cur.Events = v
			}
		case k == "average rate":
			if v, ok := number(val); ok {
				cur.Rate = v
			}
		}
	}
	if len(info.Nodes) == 0 && !info.Complete {
		return report.Failure(report.DomainAuditRate, report.StageParse, raw,
			errors.New("no audit rate blocks found"))
	}
	return report.Section{Domain: report.DomainAuditRate, Audit: info}
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(firstField(s), 64)
	return v, err == nil
}
