package claude

import (
	"math"
	"strconv"
	"strings"
)

// magnitude suffixes accepted after a token count
var magnitudes = map[byte]float64{
	'k': 1e3,
	'm': 1e6,
	'b': 1e9,
}

// parseGroupedInt parses an integer with thousands separators ("52,252")
func parseGroupedInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseGroupedFloat parses a decimal with thousands separators ("1,200")
func parseGroupedFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseSuffixed parses "1.5k", "2M", "3b" or a plain number. The suffix is
// case-insensitive; commas are stripped first.
func parseSuffixed(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, ",", "")))
	if s == "" {
		return 0, false
	}

	mult := 1.0
	if m, ok := magnitudes[s[len(s)-1]]; ok {
		mult = m
		s = s[:len(s)-1]
	}

	v, ok := parseGroupedFloat(s)
	if !ok {
		return 0, false
	}
	return v * mult, true
}

// toTokens rounds a parsed token quantity to a whole count
func toTokens(v float64) int64 {
	return int64(math.Round(v))
}
