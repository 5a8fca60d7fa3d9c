package report

import (
	"regexp"
	"strconv"
	"strings"
)

var unsafeIDChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafeID turns a cluster address into a key usable inside hierarchical
// identifiers (HTML ids, YAML paths). "10.154.0.71" becomes "10_154_0_71".
func SafeID(address string) string {
	id := unsafeIDChars.ReplaceAllString(strings.TrimSpace(address), "_")
	if id == "" {
		return "target"
	}
	return id
}

// UniqueIDs returns one SafeID per address, suffixing repeats with -2, -3...
// so every id is distinct within a report.
func UniqueIDs(addresses []string) []string {
	out := make([]string, len(addresses))
	taken := make(map[string]bool, len(addresses))
	for i, a := range addresses {
		base := SafeID(a)
		id := base
		for n := 2; taken[id]; n++ {
			id = base + "-" + strconv.Itoa(n)
		}
		taken[id] = true
		out[i] = id
	}
	return out
}
