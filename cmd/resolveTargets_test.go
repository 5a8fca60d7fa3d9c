package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

func TestResolvePlan_Precedence(t *testing.T) {
	resetConfig()
	t.Setenv("EAST_PW", "east-secret")
	t.Setenv("FLEET_PW", "fleet-secret")
	cfgUser = "flaguser"
	cfgHelperPath = "/ifs/tools/ar.sh"

	inv := &inventory{
		Name:     "N",
		Defaults: inventoryDefaults{User: "root", Port: 2222, PasswordEnv: "FLEET_PW", HelperPath: "/root/x.sh"},
		Targets: []inventoryTarget{
			{Name: "east", Address: "10.0.0.1", User: "svc", PasswordEnv: "EAST_PW"},
			{Address: "10.0.0.2:22", Password: " spaced "},
			{Address: "10.0.0.3", HelperPath: "/tmp/ar.sh"},
		},
	}
	p, err := resolvePlan(inv)
	require.NoError(t, err)
	require.Equal(t, report.DefaultDomains, p.Domains)
	require.Len(t, p.Targets, 3)

	east := p.Targets[0]
	require.Equal(t, "east", east.Name)
	require.Equal(t, "10.0.0.1:2222", east.Endpoint.Address())
	require.Equal(t, "svc", east.Endpoint.Username())
	require.Equal(t, "east-secret", east.Endpoint.Secret())
	require.Equal(t, "/ifs/tools/ar.sh", east.HelperPath)

	second := p.Targets[1]
	require.Equal(t, "10.0.0.2:22", second.Endpoint.Address())
	require.Equal(t, "flaguser", second.Endpoint.Username())
	require.Equal(t, " spaced ", second.Endpoint.Secret())

	third := p.Targets[2]
	require.Equal(t, "fleet-secret", third.Endpoint.Secret())
	require.Equal(t, "/tmp/ar.sh", third.HelperPath)
}

func TestResolvePlan_FlagTargetsAndDomains(t *testing.T) {
	resetConfig()
	cfgTargets = []string{"c1.example.com", "[fe80::1]:2200"}
	cfgUser = "root"
	cfgPassword = "pw"
	cfgDomains = []string{"audit_rate", "status"}

	p, err := resolvePlan(nil)
	require.NoError(t, err)
	require.Equal(t, "ad-hoc", p.Name)
	require.Equal(t, []report.Domain{report.DomainStatus, report.DomainAuditRate}, p.Domains)
	require.Equal(t, "c1.example.com:22", p.Targets[0].Endpoint.Address())
	require.Equal(t, "[fe80::1]:2200", p.Targets[1].Endpoint.Address())
	require.Equal(t, "pw", p.Targets[1].Endpoint.Secret())
}

func TestResolvePlan_InventoryDomainsUnlessFlag(t *testing.T) {
	resetConfig()
	inv := &inventory{Name: "N", Domains: []string{"readonly"}, Targets: []inventoryTarget{{Address: "a", User: "u"}}}
	p, err := resolvePlan(inv)
	require.NoError(t, err)
	require.Equal(t, []report.Domain{report.DomainReadOnly}, p.Domains)

	cfgDomains = []string{"nics"}
	p, err = resolvePlan(inv)
	require.NoError(t, err)
	require.Equal(t, []report.Domain{report.DomainNICs}, p.Domains)
}

func TestResolvePlan_NoTargets(t *testing.T) {
	resetConfig()
	_, err := resolvePlan(&inventory{Name: "N"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no targets")
}

func TestWithPort(t *testing.T) {
	require.Equal(t, "a", withPort("a", 0))
	require.Equal(t, "a:2222", withPort("a", 2222))
	require.Equal(t, "a:22", withPort("a:22", 2222))
	require.Equal(t, "[::1]:2222", withPort("::1", 2222))
}
