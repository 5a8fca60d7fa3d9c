package parse

import (
	"errors"
	"strings"
	"time"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// TimeSeparator splits the node clocks from the NTP server listing in the
// compound time command.
const TimeSeparator = "__NTP_SERVERS__"

var dateLayouts = []string{time.UnixDate, "Mon Jan _2 15:04:05 -0700 2006", time.RubyDate}

// Time parses the output of
//
//	isi_for_array -s date; echo __NTP_SERVERS__; isi ntp servers list
func Time(raw []byte) report.Section {
	info := &report.TimeInfo{
		Nodes:          []report.NodeTime{},
		NTPServers:     []report.NTPServer{},
		MaxSkewSeconds: -1,
	}
	ls := lines(raw)
	cut := len(ls)
	for i, l := range ls {
		if strings.TrimSpace(l) == TimeSeparator {
			cut = i
			break
		}
	}
	var parsed []time.Time
	for _, l := range ls[:cut] {
		t := strings.TrimSpace(l)
		if t == "" {
			continue
		}
		node := ""
		if f := strings.Fields(t); len(f) > 1 && strings.HasSuffix(f[0], ":") {
			node = strings.TrimSuffix(f[0], ":")
			t = strings.TrimSpace(strings.TrimPrefix(t, f[0]))
		}
		when, ok := parseDate(t)
		if !ok {
			continue
		}
		parsed = append(parsed, when)
		info.Nodes = append(info.Nodes, report.NodeTime{Node: node, Time: t})
	}
	if len(info.Nodes) == 0 {
		return report.Failure(report.DomainTime, report.StageParse, raw,
			errors.New("no node clock lines found"))
	}
	if len(parsed) >= 2 {
		lo, hi := parsed[0], parsed[0]
		for _, p := range parsed[1:] {
			if p.Before(lo) {
				lo = p
			}
			if p.After(hi) {
				hi = p
			}
		}
		info.MaxSkewSeconds = int64(hi.Sub(lo) / time.Second)
	}
	if cut < len(ls) {
		info.NTPServers = ntpServers(ls[cut+1:])
	}
	return report.Section{Domain: report.DomainTime, Time: info}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ntpServers(ls []string) []report.NTPServer {
	out := []report.NTPServer{}
	h := findHeader(ls, "name")
	if h < 0 {
		return out
	}
	cols := headerColumns(ls[h])
	for _, line := range ls[h+1:] {
		if strings.TrimSpace(line) == "" || isRule(line) || isTotal(line) {
			continue
		}
		row := assign(cols, line)
		if row["name"] == "" {
			continue
		}
		out = append(out, report.NTPServer{Name: row["name"], Key: row["key"]})
	}
	return out
}
