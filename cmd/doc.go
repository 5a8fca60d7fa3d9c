// Package cmd implements the onefs-survey command-line interface.
//
// The root command carries the shared flags (credentials, host key policy,
// timeouts, logging) and the subcommands: collect, verify, stage-helper and
// domains. Flags are bound to ONEFS_SURVEY_* environment variables through
// Viper.
//
// New contributors should start with collectCmd.go for the main flow, then
// resolveTargets.go for how inventory entries, flags and environment
// variables combine into collection targets. The collection itself lives in
// internal/fleet and internal/collector.
package cmd
