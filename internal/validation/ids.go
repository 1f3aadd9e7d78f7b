package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var idRegex = regexp.MustCompile(`^\d+$`)

// ParseID parses an identifier taken from client input on write paths.
// It accepts only one or more decimal digits that fit an int64; anything else is rejected
// without reaching the persistence layer.
func ParseID(raw string) (int64, bool) {
	if !idRegex.MatchString(raw) {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParseIDLenient parses an identifier on read paths. It skips leading whitespace, accepts an
// optional sign and uses the longest run of digits that follows, so "12abc" resolves to 12.
// It only fails when no digit can be read.
func ParseIDLenient(raw string) (int64, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(sign+s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
