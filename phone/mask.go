package phone

import (
	"strings"
	"unicode"
)

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
	maskedHeadLen            = 3
)

// Mask hides a number for log output. Valid numbers come back in local form
// with the three character prefix and the last four digits visible:
//
//	"+263772123456" -> "077***3456"
//
// Anything else keeps formatting symbols and masks all digits but the last
// four (or the last one when there are four digits or fewer):
//
//	"12345678" -> "****5678"
//	"+123"     -> "+**3"
//	"AB-CD"    -> "**-*D"
func Mask(raw string) string {
	if core, ok := validCore(raw); ok {
		local := trunkPrefix + core
		masked := len(local) - maskedHeadLen - keepLongDigits
		return local[:maskedHeadLen] + strings.Repeat("*", masked) + local[len(local)-keepLongDigits:]
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	runes := []rune(raw)
	if !maskDigits(runes) {
		maskSignificant(runes)
	}
	return string(runes)
}

// maskDigits masks digits in place right to left and reports false when
// there were no digits at all.
func maskDigits(runes []rune) bool {
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return false
	}

	keep := keepLongDigits
	if total <= shortDigitCountThreshold {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		seen++
		if seen > keep {
			runes[i] = '*'
		}
	}
	return true
}

// maskSignificant masks every letter or digit except the last one.
func maskSignificant(runes []rune) {
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		seen++
		if seen > 1 {
			runes[i] = '*'
		}
	}
}
