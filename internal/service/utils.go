package service

import "strings"

// sanitizeName trims a user-supplied label and drops invalid UTF-8 bytes,
// which PostgreSQL would otherwise reject.
func sanitizeName(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}
