package report

import (
	"strings"
	"unicode/utf8"
)

// Stage identifies where a section failed.
type Stage string

const (
	// StageConnect marks placeholders for targets that were never reached.
	StageConnect Stage = "connect"
	// StageHelper marks domains that could not run because the helper
	// script could not be staged.
	StageHelper  Stage = "helper"
	StageCommand Stage = "command"
	StageParse   Stage = "parse"
)

// snippetLimit bounds the raw output carried by a ParseFailure.
const snippetLimit = 512

// Section is the slot for one domain in a TargetReport. Exactly one of the
// payload pointers is set.
type Section struct {
	Domain   Domain        `yaml:"domain" json:"domain"`
	Status   *StatusInfo   `yaml:"status,omitempty" json:"status,omitempty"`
	Battery  *BatteryInfo  `yaml:"battery,omitempty" json:"battery,omitempty"`
	ReadOnly *ReadOnlyMode `yaml:"readonly,omitempty" json:"readonly,omitempty"`
	Table    *Table        `yaml:"table,omitempty" json:"table,omitempty"`
	Time     *TimeInfo     `yaml:"time,omitempty" json:"time,omitempty"`
	Audit    *AuditRate    `yaml:"audit_rate,omitempty" json:"audit_rate,omitempty"`
	Failure  *ParseFailure `yaml:"failure,omitempty" json:"failure,omitempty"`
}

// Failed reports whether the section carries a failure instead of data.
func (s Section) Failed() bool { return s.Failure != nil }

// ParseFailure records why a domain has no data.
type ParseFailure struct {
	Domain  Domain `yaml:"domain" json:"domain"`
	Stage   Stage  `yaml:"stage" json:"stage"`
	Error   string `yaml:"error" json:"error"`
	Snippet string `yaml:"snippet,omitempty" json:"snippet,omitempty"`
}

// Failure builds a failed section for domain d. raw is truncated to a short
// snippet so a misbehaving command cannot bloat the report.
func Failure(d Domain, stage Stage, raw []byte, err error) Section {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Section{
		Domain: d,
		Failure: &ParseFailure{
			Domain:  d,
			Stage:   stage,
			Error:   msg,
			Snippet: snippet(raw),
		},
	}
}

// snippet cuts raw on a character boundary and replaces invalid UTF-8, so
// the field always serializes as a plain string.
func snippet(raw []byte) string {
	cut := raw
	if len(raw) > snippetLimit {
		n := snippetLimit
		for n > 0 && !utf8.RuneStart(raw[n]) {
			n--
		}
		cut = raw[:n]
	}
	s := strings.ToValidUTF8(string(cut), "\uFFFD")
	if len(cut) < len(raw) {
		s += "..."
	}
	return s
}

// Row is one table row keyed by column name.
type Row map[string]string

// Table is the uniform shape for every table-like domain. Every row carries
// every column. Skipped counts candidate records that were malformed and
// left out, so len(Rows)+Skipped is the number of records seen.
type Table struct {
	Columns []string `yaml:"columns" json:"columns"`
	Rows    []Row    `yaml:"rows" json:"rows"`
	Skipped int      `yaml:"skipped" json:"skipped"`
}

// NewTable returns an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns, Rows: []Row{}}
}

// Add appends a row, filling any missing column with an empty value and
// dropping keys that are not columns.
func (t *Table) Add(values Row) {
	r := make(Row, len(t.Columns))
	for _, c := range t.Columns {
		r[c] = values[c]
	}
	t.Rows = append(t.Rows, r)
}

// StatusInfo is the summary from `isi status`.
type StatusInfo struct {
	ClusterName string            `yaml:"cluster_name" json:"cluster_name"`
	Health      string            `yaml:"health" json:"health"`
	Fields      map[string]string `yaml:"fields,omitempty" json:"fields,omitempty"`
	Nodes       []NodeStatus      `yaml:"nodes" json:"nodes"`
}

// NodeStatus is one row of the node table in `isi status`.
type NodeStatus struct {
	ID        string `yaml:"id" json:"id"`
	Address   string `yaml:"address" json:"address"`
	Health    string `yaml:"health" json:"health"`
	Used      string `yaml:"used,omitempty" json:"used,omitempty"`
	Size      string `yaml:"size,omitempty" json:"size,omitempty"`
	UsedRatio string `yaml:"used_pct,omitempty" json:"used_pct,omitempty"`
}

// BatteryInfo is the output of `isi batterystatus list`.
type BatteryInfo struct {
	Supported bool          `yaml:"supported" json:"supported"`
	Message   string        `yaml:"message,omitempty" json:"message,omitempty"`
	Nodes     []NodeBattery `yaml:"nodes" json:"nodes"`
	AllGood   bool          `yaml:"all_good" json:"all_good"`
}

// NodeBattery carries the status columns of one node, in column order.
type NodeBattery struct {
	LNN      string   `yaml:"lnn" json:"lnn"`
	Statuses []string `yaml:"statuses" json:"statuses"`
}

// ReadOnlyMode is the output of `isi readonly list`.
type ReadOnlyMode struct {
	Nodes       []NodeMode `yaml:"nodes" json:"nodes"`
	AnyReadOnly bool       `yaml:"any_read_only" json:"any_read_only"`
}

// NodeMode is one node's read/write mode.
type NodeMode struct {
	LNN    string `yaml:"lnn" json:"lnn"`
	Mode   string `yaml:"mode" json:"mode"`
	Status string `yaml:"status,omitempty" json:"status,omitempty"`
}

// TimeInfo carries per-node clocks and the configured NTP servers.
type TimeInfo struct {
	Nodes      []NodeTime  `yaml:"nodes" json:"nodes"`
	NTPServers []NTPServer `yaml:"ntp_servers" json:"ntp_servers"`
	// MaxSkewSeconds is the spread between the earliest and latest parsed
	// node clock, or -1 when fewer than two clocks could be parsed.
	MaxSkewSeconds int64 `yaml:"max_skew_seconds" json:"max_skew_seconds"`
}

// NodeTime is one node's `date` output.
type NodeTime struct {
	Node string `yaml:"node" json:"node"`
	Time string `yaml:"time" json:"time"`
}

// NTPServer is one row of `isi ntp servers list`.
type NTPServer struct {
	Name string `yaml:"name" json:"name"`
	Key  string `yaml:"key,omitempty" json:"key,omitempty"`
}

// AuditRate is the output of the audit-rate helper script.
type AuditRate struct {
	Nodes        []NodeAuditRate `yaml:"nodes" json:"nodes"`
	TotalAverage float64         `yaml:"total_average" json:"total_average"`
	Complete     bool            `yaml:"complete" json:"complete"`
}

// NodeAuditRate is one node block of the audit-rate script.
type NodeAuditRate struct {
	Node    string  `yaml:"node" json:"node"`
	Seconds int64   `yaml:"seconds" json:"seconds"`
	Events  int64   `yaml:"events" json:"events"`
	Rate    float64 `yaml:"rate" json:"rate"`
}
