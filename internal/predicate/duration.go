package predicate

import "math"

// ParseLeadingMinutes extracts the first run of digits from a stated
// duration such as "30 นาที", "15 min", or "8mins". Text with no digits is
// treated as unbounded: the result is +Inf, so it never satisfies a
// numeric threshold.
func ParseLeadingMinutes(cookTime string) float64 {
	n, digits := 0, false
	for _, r := range cookTime {
		if r >= '0' && r <= '9' {
			digits = true
			n = n*10 + int(r-'0')
			continue
		}
		if digits {
			break
		}
	}
	if !digits {
		return math.Inf(1)
	}
	return float64(n)
}
