package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
	"github.com/vallentes/OneFS-Dashboard/internal/session/sessiontest"
)

const twoClusterInventory = `
name: Lab
description: Two lab clusters
defaults:
  user: root
targets:
  - name: east
    address: 10.0.0.1
  - host: 10.0.0.2:2222
`

func TestCollect_WritesYAMLReportSummaryAndMetrics(t *testing.T) {
	resetConfig()
	stubOpener(t, &sessiontest.Opener{Sessions: map[string]*sessiontest.Session{
		"10.0.0.1": healthySession("east"),
		"10.0.0.2": healthySession("west"),
	}})
	tmp := t.TempDir()
	inv := writeTemp(t, tmp, "inv.yaml", twoClusterInventory)
	outPath := filepath.Join(tmp, "reports", "fleet.yaml")
	metricsPath := filepath.Join(tmp, "survey.prom")

	_, stderr, err := runRoot(t, "collect", "--inventory", inv, "--out", outPath,
		"--summary", "--metrics-out", metricsPath, "--password", "pw")
	require.NoError(t, err)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var fr report.FleetReport
	require.NoError(t, yaml.Unmarshal(b, &fr))
	require.Equal(t, "Lab", fr.Name)
	require.NotEmpty(t, fr.RunID)
	require.Len(t, fr.Targets, 2)
	require.Equal(t, "east", fr.Targets[0].ID)
	require.Equal(t, "10_0_0_2", fr.Targets[1].ID)
	require.Equal(t, "10.0.0.2:2222", fr.Targets[1].Address)
	for _, tr := range fr.Targets {
		require.Equal(t, report.StatusOK, tr.Status)
		require.Len(t, tr.Sections, len(report.DefaultDomains))
	}

	require.Contains(t, stderr, "east")
	require.Contains(t, stderr, "report written")

	m, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(m), `onefs_survey_targets_total{status="ok"} 2`)
}

func TestCollect_JSONToStdoutWithDomainFilter(t *testing.T) {
	resetConfig()
	stubOpener(t, &sessiontest.Opener{Sessions: map[string]*sessiontest.Session{
		"c1": healthySession("c1"),
	}})
	stdout, _, err := runRoot(t, "collect", "--target", "c1", "--user", "root",
		"--domains", "nics,status", "--format", "json")
	require.NoError(t, err)

	var fr report.FleetReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &fr))
	require.Equal(t, []report.Domain{report.DomainStatus, report.DomainNICs}, fr.Domains)
	require.Len(t, fr.Targets[0].Sections, 2)
	require.Equal(t, "ad-hoc", fr.Name)
}

func TestCollect_AllUnreachableStillWritesReport(t *testing.T) {
	resetConfig()
	authErr := &session.ConnectError{Address: "c1:22", Reason: session.ReasonAuth, Err: errors.New("denied")}
	stubOpener(t, &sessiontest.Opener{Errors: map[string]error{"c1": authErr}})
	outPath := filepath.Join(t.TempDir(), "fleet.yaml")

	_, _, err := runRoot(t, "collect", "--target", "c1", "--user", "root", "--out", outPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "all 1 targets unreachable")

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var fr report.FleetReport
	require.NoError(t, yaml.Unmarshal(b, &fr))
	require.Equal(t, report.StatusUnreachable, fr.Targets[0].Status)
}

func TestCollect_Errors(t *testing.T) {
	resetConfig()
	_, _, err := runRoot(t, "collect")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no targets")

	resetConfig()
	_, _, err = runRoot(t, "collect", "--target", "c1", "--user", "root", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported report format")

	resetConfig()
	_, _, err = runRoot(t, "collect", "--inventory", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read inventory")
}
