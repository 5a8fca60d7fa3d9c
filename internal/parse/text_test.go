package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCells(t *testing.T) {
	cs := splitCells("1    mgmt-1  No Carrier  -")
	require.Equal(t, []cell{
		{text: "1", start: 0},
		{text: "mgmt-1", start: 5},
		{text: "No Carrier", start: 13},
		{text: "-", start: 25},
	}, cs)
	require.Empty(t, splitCells("   "))
}

func TestAssignFallsBackToFields(t *testing.T) {
	cols := headerColumns("Lnn  Status1  Status2")
	row := assign(cols, "1 Good Good")
	require.Equal(t, map[string]string{"lnn": "1", "status1": "Good", "status2": "Good"}, row)
}

func TestIsRule(t *testing.T) {
	require.True(t, isRule("---+-----+---"))
	require.True(t, isRule("  ======"))
	require.False(t, isRule(""))
	require.False(t, isRule("-- a --"))
}

func TestAssignSplitsOverflowingValue(t *testing.T) {
	header := fmt.Sprintf("%-5s%-10s%-8s%-25s%s", "LNN", "Name", "Status", "Owners", "IP Addresses")
	row := fmt.Sprintf("%-5s%-13s%-5s%-25s%s", "2", "10gige-agg-1", "Up", "groupnet0.subnet0.pool0", "10.1.0.12")
	got := assign(headerColumns(header), row)
	require.Equal(t, map[string]string{
		"lnn":          "2",
		"name":         "10gige-agg-1",
		"status":       "Up",
		"owners":       "groupnet0.subnet0.pool0",
		"ip_addresses": "10.1.0.12",
	}, got)

	// Spaces inside a value that stays within its column are kept.
	row = fmt.Sprintf("%-5s%-10s%-33s%s", "1", "mgmt-1", "No Carrier", "-")
	got = assign(headerColumns(header), row)
	require.Equal(t, "No Carrier", got["status"])
	require.Equal(t, "-", got["ip_addresses"])
}
