package config

import "strings"

// cleanList trims whitespace around each entry and drops the empties a
// trailing comma leaves behind.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))

	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
