// Package utils holds small helpers shared by the config, todo and report
// packages.
package utils

import (
	"strconv"
	"strings"
)

// SplitAndTrim splits s on sep, trims each part and drops empty ones.
// "a, b,,c" split on "," yields [a b c].
func SplitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JSONPointerToPath turns a JSON Pointer such as "#/tasks/0/due" into the
// dotted form "tasks[0].due" used in validation messages.
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, token := range strings.Split(ptr, "/") {
		// RFC 6901 escapes: ~1 is "/" and ~0 is "~", in that order.
		token = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
		if token == "" {
			continue
		}
		if idx, err := strconv.Atoi(token); err == nil {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(idx))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(token)
	}
	return b.String()
}
