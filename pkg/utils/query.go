package utils

import (
	"regexp"
	"strings"
)

var airportCodeSuffix = regexp.MustCompile(`\s*\([A-Za-z]{3}\)\s*$`)

// ExtractCityName strips a trailing "(XXX)" airport code from an autocomplete
// label: "Chennai (MAA)" becomes "Chennai". Plain city names pass through.
func ExtractCityName(label string) string {
	return strings.TrimSpace(airportCodeSuffix.ReplaceAllString(label, ""))
}

// ExtractAirportCode returns the "(XXX)" code of an autocomplete label,
// uppercased, or "" when the label carries none.
func ExtractAirportCode(label string) string {
	open := strings.LastIndex(label, "(")
	close := strings.LastIndex(label, ")")
	if open < 0 || close != open+4 {
		return ""
	}
	return strings.ToUpper(label[open+1 : close])
}

// SplitList splits a comma-separated allow-list into trimmed values, dropping
// empties. An empty input yields nil, meaning "filter inactive".
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// ContainsFold reports whether list contains value, case-insensitive.
func ContainsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
