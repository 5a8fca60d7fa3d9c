package parse

import (
	"errors"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// ReadOnly parses `isi readonly list`.
func ReadOnly(raw []byte) report.Section {
	ls := lines(raw)
	h := findHeader(ls, "lnn")
	if h < 0 {
		return report.Failure(report.DomainReadOnly, report.StageParse, raw,
			errors.New("no LNN header found"))
	}
	cols := headerColumns(ls[h])
	info := &report.ReadOnlyMode{Nodes: []report.NodeMode{}}
	for _, line := range ls[h+1:] {
		if strings.TrimSpace(line) == "" || isRule(line) || isTotal(line) {
			continue
		}
		row := assign(cols, line)
		if !isInt(row[cols[0].name]) {
			continue
		}
		n := report.NodeMode{LNN: row[cols[0].name], Mode: row["mode"], Status: row["status"]}
		m := strings.ToLower(n.Mode)
		if strings.Contains(m, "read-only") || strings.Contains(m, "readonly") {
			info.AnyReadOnly = true
		}
		info.Nodes = append(info.Nodes, n)
	}
	if len(info.Nodes) == 0 {
		return report.Failure(report.DomainReadOnly, report.StageParse, raw,
			errors.New("no node rows found"))
	}
	return report.Section{Domain: report.DomainReadOnly, ReadOnly: info}
}
