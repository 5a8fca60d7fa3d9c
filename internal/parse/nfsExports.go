package parse

import "github.com/vallentes/OneFS-Dashboard/internal/report"

// NFSExportColumns are the columns of the nfs_exports table.
var NFSExportColumns = []string{
	"id", "zone", "description", "paths", "read_only", "read_write_clients", "root_clients",
}

// NFSExports parses `isi nfs exports list --format json`.
func NFSExports(raw []byte) report.Section {
	return structured(report.DomainNFSExports, raw, NFSExportColumns, func(e map[string]any) report.Row {
		return report.Row{
			"id":                 text(e["id"]),
			"zone":               text(e["zone"]),
			"description":        text(e["description"]),
			"paths":              text(e["paths"]),
			"read_only":          text(e["read_only"]),
			"read_write_clients": text(e["read_write_clients"]),
			"root_clients":       text(e["root_clients"]),
		}
	})
}
