package parse

import (
	"errors"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

var batteryFine = map[string]bool{
	"good": true, "ok": true, "pass": true, "passed": true, "-": true, "n/a": true,
}

// Battery parses `isi batterystatus list`. Clusters without battery-backed
// NVRAM answer with a "not supported" message instead of a table, which is
// reported as Supported=false rather than a failure.
func Battery(raw []byte) report.Section {
	ls := lines(raw)
	info := &report.BatteryInfo{Supported: true, Nodes: []report.NodeBattery{}}
	if h := findHeader(ls, "lnn"); h >= 0 {
		cols := headerColumns(ls[h])
		for _, line := range ls[h+1:] {
			if strings.TrimSpace(line) == "" || isRule(line) || isTotal(line) {
				continue
			}
			row := assign(cols, line)
			if !isInt(row[cols[0].name]) {
				continue
			}
			nb := report.NodeBattery{LNN: row[cols[0].name], Statuses: []string{}}
			for _, c := range cols[1:] {
				if v := row[c.name]; v != "" {
					nb.Statuses = append(nb.Statuses, v)
				}
			}
			info.Nodes = append(info.Nodes, nb)
		}
	}
	if len(info.Nodes) == 0 {
		if strings.Contains(strings.ToLower(string(raw)), "not supported") {
			info.Supported = false
			info.Message = firstLine(raw)
			return report.Section{Domain: report.DomainBattery, Battery: info}
		}
		return report.Failure(report.DomainBattery, report.StageParse, raw,
			errors.New("no battery rows found"))
	}
	info.AllGood = true
	for _, n := range info.Nodes {
		for _, s := range n.Statuses {
			if !batteryFine[strings.ToLower(s)] {
				info.AllGood = false
			}
		}
	}
	return report.Section{Domain: report.DomainBattery, Battery: info}
}

func firstLine(raw []byte) string {
	for _, l := range lines(raw) {
		if t := strings.TrimSpace(l); t != "" {
			return t
		}
	}
	return ""
}
