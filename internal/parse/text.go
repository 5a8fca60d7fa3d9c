package parse

import (
	"strconv"
	"strings"
	"unicode"
)

// lines splits raw output into lines without trailing CR.
func lines(raw []byte) []string {
	out := strings.Split(string(raw), "\n")
	for i, l := range out {
		out[i] = strings.TrimRight(l, "\r")
	}
	return out
}

// isRule reports whether line is a table rule such as "-----" or "---+---".
func isRule(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	for _, r := range t {
		if r != '-' && r != '=' && r != '+' {
			return false
		}
	}
	return true
}

func isTotal(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "Total:")
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// column is one header label and the offset it starts at.
type column struct {
	name  string
	start int
}

// cell is one run of text separated from its neighbours by two or more
// spaces (or a tab).
type cell struct {
	text  string
	start int
}

// splitCells breaks a table line into cells. Single spaces stay inside a
// cell so values like "No Carrier" survive.
func splitCells(line string) []cell {
	var out []cell
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		start := i
		for i < len(runes) {
			if runes[i] == '\t' {
				break
			}
			if runes[i] == ' ' && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				break
			}
			if runes[i] == ' ' && i+1 == len(runes) {
				break
			}
			i++
		}
		out = append(out, cell{text: strings.TrimSpace(string(runes[start:i])), start: start})
	}
	return out
}

// headerColumns reads column labels from a header line, normalizing them to
// snake_case keys.
func headerColumns(line string) []column {
	cs := splitCells(line)
	out := make([]column, 0, len(cs))
	for _, c := range cs {
		out = append(out, column{name: columnKey(c.text), start: c.start})
	}
	return out
}

func columnKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

// assign maps a row onto header columns. Each cell goes to the right-most
// column starting at or before it (one column of slack for ragged
// alignment). A row with a single cell but several header columns is
// treated as single-space separated and assigned positionally.
func assign(cols []column, line string) map[string]string {
	out := make(map[string]string, len(cols))
	if len(cols) == 0 {
		return out
	}
	cs := splitCells(line)
	if len(cs) == 1 && len(cols) > 1 && strings.Contains(cs[0].text, " ") {
		fs := strings.Fields(cs[0].text)
		for i, f := range fs {
			idx := i
			if idx >= len(cols) {
				idx = len(cols) - 1
			}
			join(out, cols[idx].name, f)
		}
		return out
	}
	if len(cs) < len(cols) {
		cs = splitOverflow(cols, cs)
	}
	for _, c := range cs {
		idx := 0
		for j, col := range cols {
			if col.start <= c.start+1 {
				idx = j
			}
		}
		join(out, cols[idx].name, c.text)
	}
	return out
}

// splitOverflow separates values that ran into each other because the
// first was wider than its column, leaving a single space before the next.
// A cell reaching past a later column's start is split at the first space
// at or after that start.
func splitOverflow(cols []column, cs []cell) []cell {
	out := make([]cell, 0, len(cols))
	for _, c := range cs {
		for {
			rs := []rune(c.text)
			at := -1
			for _, col := range cols {
				if col.start <= c.start+1 || col.start >= c.start+len(rs) {
					continue
				}
				for p := col.start - 1 - c.start; p < len(rs); p++ {
					if rs[p] == ' ' {
						at = p
						break
					}
				}
				break
			}
			if at < 0 {
				out = append(out, c)
				break
			}
			out = append(out, cell{text: strings.TrimSpace(string(rs[:at])), start: c.start})
			c = cell{text: strings.TrimSpace(string(rs[at+1:])), start: c.start + at + 1}
		}
	}
	return out
}

func join(m map[string]string, k, v string) {
	if prev, ok := m[k]; ok && prev != "" {
		m[k] = prev + " " + v
		return
	}
	m[k] = v
}

// findHeader returns the index of the first line whose first cell equals
// first (case-insensitive), or -1.
func findHeader(ls []string, first string) int {
	for i, l := range ls {
		cs := splitCells(l)
		if len(cs) > 1 && strings.EqualFold(cs[0].text, first) {
			return i
		}
	}
	return -1
}
