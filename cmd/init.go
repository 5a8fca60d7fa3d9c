package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

const envPrefix = "ONEFS_SURVEY"

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands.
func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgInventory, "inventory", "i", "", "Path to YAML inventory of clusters")
	pf.StringSliceVarP(&cfgTargets, "target", "t", nil, "Cluster address host[:port]; repeatable, added to the inventory targets")
	pf.StringVarP(&cfgUser, "user", "u", "", "SSH username when the inventory does not name one")
	pf.StringVar(&cfgPassword, "password", "", "SSH password (or set ONEFS_SURVEY_PASSWORD)")
	pf.StringSliceVar(&cfgDomains, "domains", nil, "Domains to collect (comma separated); default is the standard battery")
	pf.StringVar(&cfgHelperPath, "helper-path", "", "Remote path of the audit-rate helper (default /root/auditrates.sh)")
	pf.StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	pf.BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	pf.DurationVar(&cfgConnTimeout, "conn-timeout", session.DefaultConnectTimeout, "Connection timeout per attempt")
	pf.DurationVar(&cfgCmdTimeout, "cmd-timeout", 0, "Per-command timeout (e.g., 2m) for domains without their own timeout (audit_rate keeps 1h). 0 uses 5m")
	pf.UintVar(&cfgConnectAttempts, "connect-attempts", 1, "Connect attempts for unreachable or timed out targets")
	pf.IntVar(&cfgParallelism, "parallelism", 0, "Maximum clusters collected at once. 0 means all")
	pf.Float64Var(&cfgDialRate, "dial-rate", 0, "Maximum new SSH connections per second. 0 means unlimited")
	pf.StringVar(&cfgLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfgLogFormat, "log-format", "text", "Log format: text or json")

	// collect-only flags
	cf := collectCmd.Flags()
	cf.StringVarP(&cfgOutPath, "out", "o", "", "Path to output report file (default stdout)")
	cf.StringVarP(&cfgFormat, "format", "f", "yaml", "Report format: yaml or json")
	cf.BoolVar(&cfgSummary, "summary", false, "Print a text summary to stderr after collection")
	cf.StringVar(&cfgMetricsOut, "metrics-out", "", "Write run metrics in Prometheus textfile format to this path")

	bindFlags()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("inventory"); v != "" {
			cfgInventory = v
		}
		if v := splitList(viper.GetStringSlice("target")); len(v) > 0 {
			cfgTargets = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := splitList(viper.GetStringSlice("domains")); len(v) > 0 {
			cfgDomains = v
		}
		if v := viper.GetString("helper-path"); v != "" {
			cfgHelperPath = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetDuration("conn-timeout"); v > 0 {
			cfgConnTimeout = v
		}
		if v := viper.GetDuration("cmd-timeout"); v > 0 {
			cfgCmdTimeout = v
		}
		if v := viper.GetUint("connect-attempts"); v > 0 {
			cfgConnectAttempts = v
		}
		if v := viper.GetInt("parallelism"); v > 0 {
			cfgParallelism = v
		}
		if v := viper.GetFloat64("dial-rate"); v > 0 {
			cfgDialRate = v
		}
		if v := viper.GetString("log-level"); v != "" {
			cfgLogLevel = v
		}
		if v := viper.GetString("log-format"); v != "" {
			cfgLogFormat = v
		}
		if v := viper.GetString("out"); v != "" {
			cfgOutPath = v
		}
		if v := viper.GetString("format"); v != "" {
			cfgFormat = v
		}
		if v := viper.GetString("metrics-out"); v != "" {
			cfgMetricsOut = v
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if viper.IsSet("summary") {
			cfgSummary = viper.GetBool("summary")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(stageHelperCmd)
	rootCmd.AddCommand(domainsCmd)
}

// bindFlags binds every flag to its Viper key and enables environment
// lookups.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	for _, name := range []string{
		"inventory", "target", "user", "password", "domains", "helper-path",
		"known-hosts", "strict-host-key", "conn-timeout", "cmd-timeout",
		"connect-attempts", "parallelism", "dial-rate", "log-level", "log-format",
	} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
	cf := collectCmd.Flags()
	for _, name := range []string{"out", "format", "summary", "metrics-out"} {
		_ = viper.BindPFlag(name, cf.Lookup(name))
	}
	configureViper()
}

// configureViper maps keys like "known-hosts" to ONEFS_SURVEY_KNOWN_HOSTS.
func configureViper() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// splitList flattens comma or whitespace separated entries.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })...)
	}
	return out
}
