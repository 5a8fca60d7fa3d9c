package session

import "strings"

// ShellQuote quotes s for a POSIX shell. Paths and plain words built from
// shellSafe characters pass through unchanged; anything else is wrapped in
// single quotes with embedded quotes written as '\''.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafeShellRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

const shellSafe = "-_./@:,+="

func unsafeShellRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	}
	return !strings.ContainsRune(shellSafe, r)
}
