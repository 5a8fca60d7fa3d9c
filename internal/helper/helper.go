// Package helper carries the scripts that must be staged on a cluster before
// some domains can be collected. The collector treats them as opaque bytes.
package helper

import (
	_ "embed"
	"os"
)

// DefaultAuditRatesPath is where the audit-rate script is staged.
const DefaultAuditRatesPath = "/root/auditrates.sh"

//go:embed auditrates.sh
var auditRates []byte

// Payload is a file to place on a target.
type Payload struct {
	Path string
	Body []byte
	Mode os.FileMode
}

// AuditRates returns the audit-rate script payload destined for path, or for
// DefaultAuditRatesPath when path is empty.
func AuditRates(path string) Payload {
	if path == "" {
		path = DefaultAuditRatesPath
	}
	return Payload{Path: path, Body: auditRates, Mode: 0o755}
}
