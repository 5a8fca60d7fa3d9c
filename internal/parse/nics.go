package parse

import (
	"errors"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// NICColumns are the columns of the nics table.
var NICColumns = []string{"lnn", "name", "status", "owners", "ip_addresses"}

// NICs parses `isi network interfaces list`. An interface with several
// owners or addresses continues on following lines with the LNN and name
// columns blank; those values are folded into the previous row.
func NICs(raw []byte) report.Section {
	ls := lines(raw)
	t := report.NewTable(NICColumns...)
	h := findHeader(ls, "lnn")
	if h < 0 {
		return nicsByFields(ls, raw)
	}
	cols := headerColumns(ls[h])
	var last report.Row
	for _, line := range ls[h+1:] {
		if strings.TrimSpace(line) == "" || isRule(line) || isTotal(line) {
			continue
		}
		row := assign(cols, line)
		if row["lnn"] == "" && row["name"] == "" {
			if last == nil {
				t.Skipped++
				continue
			}
			appendList(last, "owners", row["owners"])
			appendList(last, "ip_addresses", row["ip_addresses"])
			continue
		}
		if !isInt(row["lnn"]) || row["name"] == "" {
			t.Skipped++
			last = nil
			continue
		}
		t.Add(report.Row(row))
		last = t.Rows[len(t.Rows)-1]
	}
	return report.Section{Domain: report.DomainNICs, Table: t}
}

func nicsByFields(ls []string, raw []byte) report.Section {
	t := report.NewTable(NICColumns...)
	for _, line := range ls {
		f := strings.Fields(line)
		if len(f) == 0 || isRule(line) || isTotal(line) {
			continue
		}
		if len(f) < 3 || !isInt(f[0]) {
			t.Skipped++
			continue
		}
		row := report.Row{"lnn": f[0], "name": f[1], "status": f[2]}
		if len(f) > 3 {
			row["owners"] = f[3]
		}
		if len(f) > 4 {
			row["ip_addresses"] = strings.Join(f[4:], ",")
		}
		t.Add(row)
	}
	if len(t.Rows) == 0 {
		return report.Failure(report.DomainNICs, report.StageParse, raw,
			errors.New("no interface rows found"))
	}
	return report.Section{Domain: report.DomainNICs, Table: t}
}

func appendList(r report.Row, k, v string) {
	if v == "" || v == "-" {
		return
	}
	if r[k] == "" || r[k] == "-" {
		r[k] = v
		return
	}
	r[k] += "," + v
}
