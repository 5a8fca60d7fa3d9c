package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// decodeArray returns the records of a `--format json` listing. The payload
// must be an array, or an object with exactly one array-valued field (some
// releases wrap listings as {"exports": [...]}). Anything after the value,
// such as an error printed once the listing was cut short, is rejected.
func decodeArray(raw []byte) ([]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty payload")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	switch x := v.(type) {
	case []any:
		return x, nil
	case map[string]any:
		var found []any
		n := 0
		for _, fv := range x {
			if arr, ok := fv.([]any); ok {
				found = arr
				n++
			}
		}
		if n == 1 {
			return found, nil
		}
	}
	return nil, errors.New("expected a JSON array")
}

// structured builds a table from a JSON listing, converting each object with
// row. Records that are not objects are skipped and counted.
func structured(d report.Domain, raw []byte, cols []string, row func(map[string]any) report.Row) report.Section {
	items, err := decodeArray(raw)
	if err != nil {
		return report.Failure(d, report.StageParse, raw, err)
	}
	t := report.NewTable(cols...)
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			t.Skipped++
			continue
		}
		t.Add(row(obj))
	}
	return report.Section{Domain: d, Table: t}
}

// text renders a decoded JSON value as a report cell.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, text(e))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+text(x[k]))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

// lookup follows a dotted path through nested objects.
func lookup(obj map[string]any, path string) any {
	var cur any = obj
	for _, k := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	return cur
}

// first returns the first non-empty rendering among paths.
func first(obj map[string]any, paths ...string) string {
	for _, p := range paths {
		if s := text(lookup(obj, p)); s != "" {
			return s
		}
	}
	return ""
}
