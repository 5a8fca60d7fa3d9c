package report

import "time"

// TargetStatus is the overall outcome for one target.
type TargetStatus string

const (
	StatusOK              TargetStatus = "ok"
	StatusPartiallyFailed TargetStatus = "partially_failed"
	StatusUnreachable     TargetStatus = "unreachable"
)

// HelperResult records what the helper presence check found.
type HelperResult struct {
	Path     string `yaml:"path" json:"path"`
	Presence string `yaml:"presence" json:"presence"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

// TargetReport is the fragment of a FleetReport for one target.
type TargetReport struct {
	ID       string        `yaml:"id" json:"id"`
	Address  string        `yaml:"address" json:"address"`
	User     string        `yaml:"user" json:"user"`
	Status   TargetStatus  `yaml:"status" json:"status"`
	Error    string        `yaml:"error,omitempty" json:"error,omitempty"`
	Helper   *HelperResult `yaml:"helper,omitempty" json:"helper,omitempty"`
	Sections []Section     `yaml:"sections" json:"sections"`
	Started  time.Time     `yaml:"started" json:"started"`
	Duration time.Duration `yaml:"duration" json:"duration"`
}

// Section returns the section for d, if present.
func (t *TargetReport) Section(d Domain) (Section, bool) {
	for _, s := range t.Sections {
		if s.Domain == d {
			return s, true
		}
	}
	return Section{}, false
}

// FailedCount returns the number of sections carrying a failure.
func (t *TargetReport) FailedCount() int {
	n := 0
	for _, s := range t.Sections {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Finalize computes Status from the connect error and the sections.
func (t *TargetReport) Finalize(connectErr error) {
	switch {
	case connectErr != nil:
		t.Status = StatusUnreachable
		t.Error = connectErr.Error()
	case t.FailedCount() > 0:
		t.Status = StatusPartiallyFailed
	default:
		t.Status = StatusOK
	}
}

// Unreachable builds the report for a target whose session never opened:
// every requested domain is present as a connect-stage failure.
func Unreachable(id, address, user string, domains []Domain, err error) TargetReport {
	tr := TargetReport{ID: id, Address: address, User: user}
	tr.Sections = make([]Section, 0, len(domains))
	for _, d := range domains {
		tr.Sections = append(tr.Sections, Failure(d, StageConnect, nil, err))
	}
	tr.Finalize(err)
	return tr
}
