package parse

import (
	"errors"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// DiskUsageColumns are the columns of the disk_usage table.
var DiskUsageColumns = []string{
	"node", "filesystem", "blocks_1k", "used", "avail", "capacity",
	"iused", "ifree", "iused_pct", "mounted_on",
}

// DiskUsage parses `isi_for_array -s df -ik`. Each line may carry a
// "node:" prefix. Lines in plain `df -k` layout (no inode columns) are
// accepted with the inode columns left empty.
func DiskUsage(raw []byte) report.Section {
	t := report.NewTable(DiskUsageColumns...)
	seen := false
	for _, line := range lines(raw) {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		row := report.Row{}
		if strings.HasSuffix(f[0], ":") {
			row["node"] = strings.TrimSuffix(f[0], ":")
			f = f[1:]
		}
		if len(f) == 0 || f[0] == "Filesystem" {
			continue
		}
		seen = true
		switch {
		case len(f) >= 9 && strings.HasSuffix(f[4], "%") && strings.HasSuffix(f[7], "%"):
			row["filesystem"], row["blocks_1k"], row["used"], row["avail"] = f[0], f[1], f[2], f[3]
			row["capacity"], row["iused"], row["ifree"], row["iused_pct"] = f[4], f[5], f[6], f[7]
			row["mounted_on"] = strings.Join(f[8:], " ")
		case len(f) >= 6 && strings.HasSuffix(f[4], "%"):
			row["filesystem"], row["blocks_1k"], row["used"], row["avail"] = f[0], f[1], f[2], f[3]
			row["capacity"] = f[4]
			row["mounted_on"] = strings.Join(f[5:], " ")
		default:
			t.Skipped++
			continue
		}
		t.Add(row)
	}
	if !seen {
		return report.Failure(report.DomainDiskUsage, report.StageParse, raw,
			errors.New("no filesystem rows found"))
	}
	return report.Section{Domain: report.DomainDiskUsage, Table: t}
}
