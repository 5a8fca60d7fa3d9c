package report

import (
	"time"

	"github.com/google/uuid"
)

// FleetReport is the root artifact of one collection run.
type FleetReport struct {
	RunID       string         `yaml:"run_id" json:"run_id"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Generated   time.Time      `yaml:"generated" json:"generated"`
	Domains     []Domain       `yaml:"domains" json:"domains"`
	Targets     []TargetReport `yaml:"targets" json:"targets"`
}

// NewFleetReport seeds a report with a fresh run ID and timestamp.
func NewFleetReport(name, description string, domains []Domain) *FleetReport {
	return &FleetReport{
		RunID:       uuid.NewString(),
		Name:        name,
		Description: description,
		Generated:   time.Now().UTC(),
		Domains:     domains,
	}
}

// Counts tallies targets by status.
func (f *FleetReport) Counts() map[TargetStatus]int {
	out := map[TargetStatus]int{
		StatusOK:              0,
		StatusPartiallyFailed: 0,
		StatusUnreachable:     0,
	}
	for _, t := range f.Targets {
		out[t.Status]++
	}
	return out
}
