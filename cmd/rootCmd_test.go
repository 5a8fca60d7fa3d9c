package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/vallentes/OneFS-Dashboard/internal/collector"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
	"github.com/vallentes/OneFS-Dashboard/internal/session/sessiontest"
	"github.com/vallentes/OneFS-Dashboard/tools/onefsfixture"
)

// writeTemp creates a file under dir with content and returns its path
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetConfig clears global configuration so tests don't leak state
func resetConfig() {
	viper.Reset()
	bindFlags()
	// Reset flags to defaults and clear Changed status
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				if sv, ok := f.Value.(pflag.SliceValue); ok {
					_ = sv.Replace(nil)
				} else {
					_ = f.Value.Set(f.DefValue)
				}
				f.Changed = false
			})
		}
	}
	cfgInventory = ""
	cfgTargets = nil
	cfgUser = ""
	cfgPassword = ""
	cfgOutPath = ""
	cfgFormat = "yaml"
	cfgSummary = false
	cfgMetricsOut = ""
	cfgDomains = nil
	cfgHelperPath = ""
	cfgKnownHosts = ""
	cfgStrictHost = true
	cfgConnTimeout = session.DefaultConnectTimeout
	cfgCmdTimeout = 0
	cfgConnectAttempts = 1
	cfgParallelism = 0
	cfgDialRate = 0
	cfgLogLevel = "info"
	cfgLogFormat = "text"
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// runRoot executes rootCmd with args, capturing stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// stubOpener makes every subcommand use o instead of dialing.
func stubOpener(t *testing.T, o session.Opener) {
	t.Helper()
	orig := openerFunc
	t.Cleanup(func() { openerFunc = orig })
	openerFunc = func(logrus.FieldLogger) session.Opener { return o }
}

// healthySession answers every domain command with fixture output.
func healthySession(cluster string) *sessiontest.Session {
	replies := map[string]sessiontest.Reply{}
	for _, s := range collector.Battery(report.AllDomains, "") {
		replies[s.Command.Line] = sessiontest.Reply{Output: onefsfixture.Output(s.Domain, cluster)}
	}
	return sessiontest.NewSession(replies)
}

func TestRoot_HelpListsSubcommands(t *testing.T) {
	resetConfig()
	out, _, err := runRoot(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"collect", "verify", "stage-helper", "domains"} {
		require.Contains(t, out, sub)
	}
}

func TestRoot_RejectsBadLogLevel(t *testing.T) {
	resetConfig()
	_, _, err := runRoot(t, "domains", "--log-level", "loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid --log-level")
}

func TestRoot_VersionFlag(t *testing.T) {
	resetConfig()
	out, _, err := runRoot(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, Version)
}

func TestRoot_ConnTimeoutDefault(t *testing.T) {
	resetConfig()
	_, _, err := runRoot(t, "domains")
	require.NoError(t, err)
	require.Equal(t, 15*time.Second, cfgConnTimeout)
	require.True(t, cfgStrictHost)
}
