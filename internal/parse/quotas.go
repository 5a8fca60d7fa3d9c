package parse

import "github.com/vallentes/OneFS-Dashboard/internal/report"

// QuotaColumns are the columns of the quotas table.
var QuotaColumns = []string{
	"type", "path", "enforced", "hard_threshold", "soft_threshold",
	"advisory_threshold", "usage_logical", "usage_physical",
}

// Quotas parses `isi quota quotas list --format json`.
func Quotas(raw []byte) report.Section {
	return structured(report.DomainQuotas, raw, QuotaColumns, func(q map[string]any) report.Row {
		return report.Row{
			"type":               text(q["type"]),
			"path":               text(q["path"]),
			"enforced":           text(q["enforced"]),
			"hard_threshold":     first(q, "thresholds.hard"),
			"soft_threshold":     first(q, "thresholds.soft"),
			"advisory_threshold": first(q, "thresholds.advisory"),
			"usage_logical":      first(q, "usage.logical", "usage.fslogical", "usage_derived"),
			"usage_physical":     first(q, "usage.physical", "usage.fsphysical"),
		}
	})
}
