package parse

import (
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// SMBShareColumns are the columns of the smb_shares table.
var SMBShareColumns = []string{
	"id", "zone", "name", "path", "description", "browsable", "permissions",
}

// SMBShares parses `isi smb share list --format json`. Permissions are
// flattened to "allow full => Everyone; deny read => S-1-..." in listing
// order.
func SMBShares(raw []byte) report.Section {
	return structured(report.DomainSMBShares, raw, SMBShareColumns, func(s map[string]any) report.Row {
		return report.Row{
			"id":          text(s["id"]),
			"zone":        text(s["zone"]),
			"name":        text(s["name"]),
			"path":        text(s["path"]),
			"description": text(s["description"]),
			"browsable":   text(s["browsable"]),
			"permissions": permissions(s["permissions"]),
		}
	})
}

func permissions(v any) string {
	list, ok := v.([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(list))
	for _, p := range list {
		m, ok := p.(map[string]any)
		if !ok {
			continue
		}
		who := first(m, "trustee.name", "trustee.id")
		parts = append(parts, strings.TrimSpace(text(m["permission_type"])+" "+text(m["permission"]))+" => "+who)
	}
	return strings.Join(parts, "; ")
}
