// ABOUTME: Flattens the info program's JSON document into panel lines
// ABOUTME: Dynamic traversal with explicit shape checks; unknown shapes degrade to skipped entries

package sysinfo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mailru/easyjson/jlexer"
)

// ParseJSON turns a structured info document into ordered panel lines.
// The expected shape is an array of module objects carrying a "type"
// tag and a "result" payload (string, number, or object), the format
// fastfetch emits with --format json. Modules with an "error" field or
// an unrecognized payload are skipped rather than failing the panel.
func ParseJSON(data []byte) ([]string, error) {
	l := jlexer.Lexer{Data: data}
	doc := l.Interface()
	if err := l.Error(); err != nil {
		return nil, fmt.Errorf("decoding info JSON: %w", err)
	}

	modules, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("info JSON: expected top-level array, got %T", doc)
	}

	var lines []string
	for _, m := range modules {
		obj, ok := m.(map[string]interface{})
		if !ok {
			continue
		}
		if _, failed := obj["error"]; failed {
			continue
		}
		typ, _ := obj["type"].(string)
		payload, present := obj["result"]
		if !present {
			payload, present = obj["output"]
		}
		if !present {
			continue
		}
		for _, line := range formatModule(typ, payload) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// formatModule renders one module payload. Scalar payloads become a
// single "Type: value" line; object payloads become one line per
// field, sorted for stable output.
func formatModule(typ string, payload interface{}) []string {
	switch v := payload.(type) {
	case string:
		return []string{label(typ) + v}
	case float64:
		return []string{label(typ) + formatNumber(v)}
	case bool:
		return []string{label(typ) + strconv.FormatBool(v)}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			switch f := v[k].(type) {
			case string:
				out = append(out, label(typ+" "+k)+f)
			case float64:
				out = append(out, label(typ+" "+k)+formatNumber(f))
			case bool:
				out = append(out, label(typ+" "+k)+strconv.FormatBool(f))
			}
		}
		return out
	default:
		return nil
	}
}

func label(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return s + ": "
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
