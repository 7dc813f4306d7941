package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var frenchPrefix = regexp.MustCompile(`^\+33\s?`)

// FormatPhone turns "+33 4 94 51 58 02" into the national "04 94 51 58 02".
// After the prefix swap a space is inserted behind every pair of digits that is
// directly followed by another digit, so already spaced numbers are left alone.
func FormatPhone(phone string) string {
	s := []rune(frenchPrefix.ReplaceAllString(phone, "0"))

	var sb strings.Builder
	for i := 0; i < len(s); {
		if i+2 < len(s) && isDigit(s[i]) && isDigit(s[i+1]) && isDigit(s[i+2]) {
			sb.WriteRune(s[i])
			sb.WriteRune(s[i+1])
			sb.WriteByte(' ')
			i += 2
			continue
		}
		sb.WriteRune(s[i])
		i++
	}
	return sb.String()
}

// FormatPhoneLink strips every whitespace character for use in a tel: link.
// The country prefix is kept as is.
func FormatPhoneLink(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
