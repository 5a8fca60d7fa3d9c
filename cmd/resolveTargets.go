package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/fleet"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// plan is everything a run needs besides the transport.
type plan struct {
	Name        string
	Description string
	Domains     []report.Domain
	Targets     []fleet.Target
}

// resolvePlan merges the inventory (which may be nil) with the --target,
// --user, --password, --helper-path and --domains flags.
//
// Precedence per field: target entry, then CLI flag, then inventory
// defaults. Passwords come from the entry, its password_env, the
// --password flag / ONEFS_SURVEY_PASSWORD, then defaults.password_env.
func resolvePlan(inv *inventory) (*plan, error) {
	if inv == nil {
		inv = &inventory{Name: "ad-hoc"}
	}
	p := &plan{Name: inv.Name, Description: inv.Description}

	names := cfgDomains
	if len(names) == 0 {
		names = inv.Domains
	}
	domains, err := report.ParseDomains(names)
	if err != nil {
		return nil, err
	}
	p.Domains = domains

	entries := append([]inventoryTarget(nil), inv.Targets...)
	for _, a := range cfgTargets {
		entries = append(entries, inventoryTarget{Address: a})
	}
	if len(entries) == 0 {
		return nil, errors.New("no targets: provide --inventory with targets or --target")
	}

	for i, e := range entries {
		user := firstNonEmpty(e.User, cfgUser, inv.Defaults.User)
		if user == "" {
			return nil, fmt.Errorf("targets[%d] (%s): no user; set user in the inventory or --user", i, e.Address)
		}
		secret := firstSet(e.Password, envValue(e.PasswordEnv), cfgPassword, envValue(inv.Defaults.PasswordEnv))
		ep, err := session.NewEndpoint(withPort(e.Address, inv.Defaults.Port), user, secret)
		if err != nil {
			return nil, fmt.Errorf("targets[%d]: %w", i, err)
		}
		p.Targets = append(p.Targets, fleet.Target{
			Name:       e.Name,
			Endpoint:   ep,
			HelperPath: firstNonEmpty(e.HelperPath, cfgHelperPath, inv.Defaults.HelperPath),
		})
	}
	return p, nil
}

// withPort appends port when address has none and port is set.
func withPort(address string, port int) string {
	address = strings.TrimSpace(address)
	if port == 0 {
		return address
	}
	if _, _, err := net.SplitHostPort(address); err == nil {
		return address
	}
	return net.JoinHostPort(strings.Trim(address, "[]"), strconv.Itoa(port))
}

func envValue(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// firstSet is firstNonEmpty without trimming, for secrets.
func firstSet(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
