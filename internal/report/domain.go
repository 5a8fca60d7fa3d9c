package report

import (
	"fmt"
	"strings"
)

// Domain names one category of operational data collected from a cluster.
type Domain string

const (
	DomainStatus     Domain = "status"
	DomainBattery    Domain = "battery"
	DomainReadOnly   Domain = "readonly"
	DomainDiskUsage  Domain = "disk_usage"
	DomainNICs       Domain = "nics"
	DomainQuotas     Domain = "quotas"
	DomainNFSExports Domain = "nfs_exports"
	DomainSMBShares  Domain = "smb_shares"
	DomainTime       Domain = "time"
	DomainAuditRate  Domain = "audit_rate"
)

// AllDomains lists every known domain in canonical collection order.
var AllDomains = []Domain{
	DomainTime,
	DomainStatus,
	DomainBattery,
	DomainReadOnly,
	DomainDiskUsage,
	DomainNICs,
	DomainQuotas,
	DomainNFSExports,
	DomainSMBShares,
	DomainAuditRate,
}

// DefaultDomains is the battery collected when the caller does not pick one.
var DefaultDomains = []Domain{
	DomainTime,
	DomainStatus,
	DomainBattery,
	DomainDiskUsage,
	DomainNICs,
	DomainQuotas,
	DomainNFSExports,
	DomainSMBShares,
	DomainAuditRate,
}

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	for _, k := range AllDomains {
		if k == d {
			return true
		}
	}
	return false
}

// ParseDomains converts names into domains, rejecting unknown names and
// returning the result in canonical order with duplicates removed. An empty
// input yields DefaultDomains.
func ParseDomains(names []string) ([]Domain, error) {
	if len(names) == 0 {
		return append([]Domain(nil), DefaultDomains...), nil
	}
	want := make(map[Domain]bool, len(names))
	for _, n := range names {
		d := Domain(strings.ToLower(strings.TrimSpace(n)))
		if d == "" {
			continue
		}
		if !d.Valid() {
			return nil, fmt.Errorf("unknown domain %q", n)
		}
		want[d] = true
	}
	if len(want) == 0 {
		return append([]Domain(nil), DefaultDomains...), nil
	}
	out := make([]Domain, 0, len(want))
	for _, d := range AllDomains {
		if want[d] {
			out = append(out, d)
		}
	}
	return out, nil
}
