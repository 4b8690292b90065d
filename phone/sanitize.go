package phone

import (
	"strings"
	"unicode"
)

// ValueOf turns a dynamically typed value into raw input. Only string and
// *string are accepted; anything else yields "" and therefore never validates.
func ValueOf(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	default:
		return ""
	}
}

// Sanitize drops whitespace, '-', '(', ')' and '.' from raw. Every other
// rune, including letters and '+', is kept as is.
//
// Whitespace means Unicode spaces plus the byte order mark U+FEFF. U+0085
// (NEL) is not whitespace here and is kept.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '(', ')', '.':
			return -1
		}
		if isSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// ExtractCore sanitizes raw and strips at most one leading prefix, tried in
// the order "+263", "263", "0". The result is not length checked.
func ExtractCore(raw string) string {
	s := Sanitize(raw)
	switch {
	case strings.HasPrefix(s, internationalPrefix):
		return s[len(internationalPrefix):]
	case strings.HasPrefix(s, CountryCode):
		return s[len(CountryCode):]
	case strings.HasPrefix(s, trunkPrefix):
		return s[len(trunkPrefix):]
	default:
		return s
	}
}

// discriminator is the table key for a core: "0" plus its first two digits.
func discriminator(core string) string {
	return trunkPrefix + core[:2]
}
