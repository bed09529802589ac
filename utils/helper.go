package utils

import (
	"net/mail"
	"path"
	"strings"
	"unicode"
)

const maxFileNameLen = 80

// SanitizeFileName reduces an uploaded file name to lowercase ASCII letters,
// digits, dots, dashes and underscores. Runs of other characters collapse
// to a single dash. The result is never empty.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '.', r == '_':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-.")
	if len(out) > maxFileNameLen {
		out = out[len(out)-maxFileNameLen:]
		out = strings.TrimLeft(out, "-.")
	}
	if out == "" {
		return "file"
	}
	return out
}

// IsValidEmail reports whether s is a single bare address.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".")
}

// IsAbsoluteURL reports whether s carries an http or https scheme.
func IsAbsoluteURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
