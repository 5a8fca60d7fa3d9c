package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomains_ListsEveryDomain(t *testing.T) {
	resetConfig()
	out, _, err := runRoot(t, "domains")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	require.Contains(t, out, "isi quota quotas list --format json")
	require.Contains(t, out, "bash /root/auditrates.sh")
	for _, l := range lines {
		if strings.HasPrefix(l, "readonly ") {
			require.Contains(t, l, " no ")
		}
	}
}
