package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// loadInventory reads and validates the YAML inventory, ensuring a name is
// present and every target has an address. An inventory without targets is
// valid here because --target may supply them.
func loadInventory(path string) (*inventory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	inv := &inventory{}
	if err := yamlUnmarshal(b, inv); err != nil {
		return nil, err
	}
	if strings.TrimSpace(inv.Name) == "" {
		return nil, errors.New("inventory.name is required")
	}
	if inv.Defaults.Port < 0 || inv.Defaults.Port > 65535 {
		return nil, fmt.Errorf("inventory.defaults.port %d out of range", inv.Defaults.Port)
	}
	for i, t := range inv.Targets {
		if strings.TrimSpace(t.Address) == "" {
			return nil, fmt.Errorf("targets[%d].address is required", i)
		}
	}
	return inv, nil
}
