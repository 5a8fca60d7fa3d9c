// Package parse turns raw OneFS command output into report sections.
//
// Every parser is a pure function of its input. Plain-text parsers read line
// by line, skip anything they do not recognize and never rely on a fixed
// column count. JSON parsers accept an array (or an object wrapping exactly
// one array) and fail the whole section only when the payload itself is
// unusable. Within tables a malformed record is skipped and counted in
// Table.Skipped.
package parse

import "github.com/vallentes/OneFS-Dashboard/internal/report"

// Func parses one domain's raw output.
type Func func(raw []byte) report.Section

var parsers = map[report.Domain]Func{
	report.DomainStatus:     Status,
	report.DomainBattery:    Battery,
	report.DomainReadOnly:   ReadOnly,
	report.DomainDiskUsage:  DiskUsage,
	report.DomainNICs:       NICs,
	report.DomainQuotas:     Quotas,
	report.DomainNFSExports: NFSExports,
	report.DomainSMBShares:  SMBShares,
	report.DomainTime:       Time,
	report.DomainAuditRate:  AuditRate,
}

// For returns the parser for d.
func For(d report.Domain) (Func, bool) {
	f, ok := parsers[d]
	return f, ok
}
