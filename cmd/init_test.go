package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_EnvOverrides_Dedicated(t *testing.T) {
	resetConfig()
	t.Setenv("ONEFS_SURVEY_PASSWORD", "s3cr3t")
	t.Setenv("ONEFS_SURVEY_KNOWN_HOSTS", "/etc/ssh/ssh_known_hosts")
	t.Setenv("ONEFS_SURVEY_DOMAINS", "status,nics")
	t.Setenv("ONEFS_SURVEY_STRICT_HOST_KEY", "false")

	tmp := t.TempDir()
	// Trigger OnInitialize by executing with minimal args that error after init
	_, _, err := runRoot(t, "verify", "--inventory", filepath.Join(tmp, "missing.yaml"))
	require.Error(t, err)
	require.Equal(t, "s3cr3t", cfgPassword)
	require.Equal(t, "/etc/ssh/ssh_known_hosts", cfgKnownHosts)
	require.Equal(t, []string{"status", "nics"}, cfgDomains)
	require.False(t, cfgStrictHost)
}

func TestInit_FlagBeatsEnv(t *testing.T) {
	resetConfig()
	t.Setenv("ONEFS_SURVEY_USER", "envuser")
	_, _, err := runRoot(t, "verify", "--user", "flaguser")
	require.Error(t, err)
	require.Equal(t, "flaguser", cfgUser)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a,b", " c "}))
	require.Nil(t, splitList(nil))
}
