package encode

import (
	"strings"
)

// stringText renders a string value. In no-quotes mode the string is
// still quoted when the relaxed reader could not read it back, and
// commas are written as \u002c whether quoted or not.
func stringText(s string, noQuotes bool) string {
	if !noQuotes {
		return quoted(s, false)
	}
	if !needsQuotes(s, true) {
		return unquoted(s, true)
	}
	return quoted(s, true)
}

func keyText(k string, noQuotes bool) string {
	if noQuotes && !needsQuotes(k, false) {
		return unquoted(k, false)
	}
	return quoted(k, false)
}

// needsQuotes reports whether s must be quoted to read back as a string.
// A value may start with a comma, since it is written escaped.
func needsQuotes(s string, value bool) bool {
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "true", "false", "null":
		return true
	}
	switch c := s[0]; {
	case c == '-', c == '#', c == '/', '0' <= c && c <= '9':
		return true
	case c == ',' && !value:
		return true
	case strings.IndexByte("{}[]:\"", c) >= 0:
		return true
	}
	return strings.ContainsAny(s, " \t\r\n\f\v:]}\"")
}

func quoted(s string, escComma bool) string {
	sb := &strings.Builder{}
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && isUEscape(s[i:]) {
			sb.WriteByte(c)
			continue
		}
		if escComma && c == ',' {
			sb.WriteString(commaEscape)
			continue
		}
		if esc, ok := escapes[c]; ok {
			sb.WriteString(esc)
			continue
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

func unquoted(s string, value bool) string {
	sb := &strings.Builder{}
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && isUEscape(s[i:]) {
			sb.WriteByte(c)
			continue
		}
		if value && c == ',' {
			sb.WriteString(commaEscape)
			continue
		}
		if esc, ok := escapes[c]; ok {
			sb.WriteString(esc)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

const commaEscape = `\u002c`

var escapes = map[byte]string{
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'"':  `\"`,
	'\\': `\\`,
}

// isUEscape reports whether s starts with a preserved \uXXXX sequence.
func isUEscape(s string) bool {
	if len(s) < 6 || s[1] != 'u' {
		return false
	}
	for _, c := range []byte(s[2:6]) {
		if !isHex(c) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
