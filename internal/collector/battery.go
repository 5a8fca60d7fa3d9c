package collector

import (
	"time"

	"github.com/vallentes/OneFS-Dashboard/internal/helper"
	"github.com/vallentes/OneFS-Dashboard/internal/parse"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
	"github.com/vallentes/OneFS-Dashboard/internal/runner"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// AuditTimeout bounds the audit-rate script, which walks a day of audit
// logs per node.
const AuditTimeout = time.Hour

// auditDone is the last line the audit-rate script prints.
const auditDone = "Total average:"

// DomainSpec binds a domain to its command and parser.
type DomainSpec struct {
	Domain      report.Domain
	Command     runner.CommandSpec
	Parse       parse.Func
	NeedsHelper bool
}

// Spec returns the DomainSpec for d. helperPath is where the audit-rate
// script lives on the target; empty means helper.DefaultAuditRatesPath.
func Spec(d report.Domain, helperPath string) (DomainSpec, bool) {
	p, ok := parse.For(d)
	if !ok {
		return DomainSpec{}, false
	}
	spec := DomainSpec{
		Domain:  d,
		Parse:   p,
		Command: runner.CommandSpec{Name: string(d), Format: runner.FormatText},
	}
	switch d {
	case report.DomainStatus:
		spec.Command.Line = "isi status"
	case report.DomainBattery:
		spec.Command.Line = "isi batterystatus list"
	case report.DomainReadOnly:
		spec.Command.Line = "isi readonly list"
	case report.DomainDiskUsage:
		spec.Command.Line = "isi_for_array -s df -ik | grep -v 1024-blocks"
	case report.DomainNICs:
		spec.Command.Line = "isi network interfaces list"
	case report.DomainQuotas:
		spec.Command.Line = "isi quota quotas list --format json"
		spec.Command.Format = runner.FormatJSON
	case report.DomainNFSExports:
		spec.Command.Line = "isi nfs exports list --format json"
		spec.Command.Format = runner.FormatJSON
	case report.DomainSMBShares:
		spec.Command.Line = "isi smb share list --format json"
		spec.Command.Format = runner.FormatJSON
	case report.DomainTime:
		spec.Command.Line = "isi_for_array -s date; echo " + parse.TimeSeparator + "; isi ntp servers list"
	case report.DomainAuditRate:
		spec.Command.Line = "bash " + session.ShellQuote(helper.AuditRates(helperPath).Path)
		spec.Command.Timeout = AuditTimeout
		spec.Command.Until = auditDone
		spec.NeedsHelper = true
	}
	return spec, true
}

// Battery returns the specs for domains, in the order given.
func Battery(domains []report.Domain, helperPath string) []DomainSpec {
	out := make([]DomainSpec, 0, len(domains))
	for _, d := range domains {
		if s, ok := Spec(d, helperPath); ok {
			out = append(out, s)
		}
	}
	return out
}
