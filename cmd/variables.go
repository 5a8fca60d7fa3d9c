package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgInventory       string
	cfgTargets         []string
	cfgUser            string
	cfgPassword        string
	cfgOutPath         string
	cfgFormat          string
	cfgSummary         bool
	cfgMetricsOut      string
	cfgDomains         []string
	cfgHelperPath      string
	cfgKnownHosts      string
	cfgStrictHost      bool
	cfgConnTimeout     time.Duration
	cfgCmdTimeout      time.Duration
	cfgConnectAttempts uint
	cfgParallelism     int
	cfgDialRate        float64
	cfgLogLevel        string
	cfgLogFormat       string
)

// log is configured by the root command before any subcommand runs.
var log = logrus.New()

// Allow tests to stub session establishment
var openerFunc = newDialer
