package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^\s*([0-9]*\.?[0-9]+)`)

// DurationToHours converts a free-text duration such as "15 Min", "2 Hours"
// or "1.5 hours" to hours. It is a best-effort heuristic: the unit is found by
// case-insensitive substring match ("hour" wins over "min") and the value is
// the leading number. Anything else yields 0.
func DurationToHours(text string) float64 {
	m := leadingNumber.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "hour"):
		return v
	case strings.Contains(lower, "min"):
		return v / 60
	default:
		return 0
	}
}

// TotalHours sums DurationToHours over rows, rounded to two decimals.
func TotalHours[T any](rows []T, duration func(T) string) float64 {
	total := 0.0
	for _, r := range rows {
		total += DurationToHours(duration(r))
	}
	return Round2(total)
}
