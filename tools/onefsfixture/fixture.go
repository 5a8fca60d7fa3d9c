// Package onefsfixture holds captured OneFS command output used by tests
// and by the fake cluster in tools/onefs_test_server.
package onefsfixture

import (
	"fmt"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/parse"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

const status = `Cluster Name: %[1]s
Cluster Health:     [  OK ]
Data Reduction:     1.00 : 1
Storage efficiency: 0.79 : 1
Cluster Storage:  HDD                 SSD Storage
Size:             1.2P (1.3P Raw)     0 (0 Raw)
Used:             800T (66%%)          0 (n/a)

                   Health  Throughput (bps)  HDD Storage      SSD Storage
ID |IP Address     |DASR |  In   Out  Total| Used / Size     |Used / Size
---+---------------+-----+-----+-----+-----+-----------------+-----------------
  1|10.1.0.11      | OK  | 1.2M| 3.4M| 4.6M| 200T/ 300T( 66%%)|(No Storage SSDs)
  2|10.1.0.12      | OK  |    0|    0|    0| 201T/ 300T( 67%%)|(No Storage SSDs)
---+---------------+-----+-----+-----+-----+-----------------+-----------------
Cluster Totals:          | 1.2M| 3.4M| 4.6M| 401T/ 600T( 66%%)|(No Storage SSDs)
`

const battery = `Lnn  Status1  Status2  Result1  Result2
--------------------------------------
1    Good     Good     -        -
2    Good     Good     -        -
--------------------------------------
Total: 2
`

const readOnly = `LNN  Mode        Status
-------------------------------
1    read-write  -
2    read-write  -
-------------------------------
Total: 2
`

const diskUsage = `%[1]s-1: /dev/ad0s1a   2026030  1000000  864000   54%%   1234  56789   2%%   /
%[1]s-1: OneFS   1300000000000  800000000000  500000000000   62%%   1000000  9000000   10%%   /ifs
%[1]s-2: /dev/ad0s1a   2026030  1000000  864000   54%%   1234  56789   2%%   /
%[1]s-2: OneFS   1300000000000  800000000000  500000000000   62%%   1000000  9000000   10%%   /ifs
`

const nics = `LNN  Name       Status      Owners                    IP Addresses
----------------------------------------------------------------------
1    10gige-1   Up          groupnet0.subnet0.pool0   10.1.0.11
2    10gige-1   Up          groupnet0.subnet0.pool0   10.1.0.12
----------------------------------------------------------------------
Total: 2
`

const quotas = `[{"type": "directory", "path": "/ifs/data", "enforced": true,
  "thresholds": {"hard": 1099511627776, "soft": null, "advisory": null},
  "usage": {"logical": 52428800, "physical": 73400320}}]`

const nfsExports = `[{"id": 1, "zone": "System", "description": "data", "paths": ["/ifs/data"],
  "read_only": false, "read_write_clients": [], "root_clients": ["10.1.0.5"]}]`

const smbShares = `[{"id": "data", "zone": "System", "name": "data", "path": "/ifs/data",
  "description": "", "browsable": true,
  "permissions": [{"permission": "full", "permission_type": "allow",
    "trustee": {"id": "SID:S-1-1-0", "name": "Everyone"}}]}]`

const clock = `%[1]s-1: Sat Oct 18 12:00:01 UTC 2026
%[1]s-2: Sat Oct 18 12:00:02 UTC 2026
` + parse.TimeSeparator + `
Name          Key
-----------------
pool.ntp.org  -
-----------------
Total: 1
`

const auditRate = `node 1:
Seconds: 86400
Events: 172800
Average rate: 2 evts/s
node 2:
Seconds: 86400
Events: 86400
Average rate: 1 evts/s
Total average: 3 evts/s
`

var outputs = map[report.Domain]string{
	report.DomainStatus:     status,
	report.DomainBattery:    battery,
	report.DomainReadOnly:   readOnly,
	report.DomainDiskUsage:  diskUsage,
	report.DomainNICs:       nics,
	report.DomainQuotas:     quotas,
	report.DomainNFSExports: nfsExports,
	report.DomainSMBShares:  smbShares,
	report.DomainTime:       clock,
	report.DomainAuditRate:  auditRate,
}

// Output returns healthy output of the domain's command on a two-node
// cluster named cluster.
func Output(d report.Domain, cluster string) string {
	tmpl, ok := outputs[d]
	if !ok {
		return ""
	}
	if !strings.Contains(tmpl, "%[1]s") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, cluster)
}
