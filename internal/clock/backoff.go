package clock

import "time"

// Backoff returns base doubled per attempt (attempt 1 = base), capped at limit.
func Backoff(base, limit time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if base <= 0 {
		return 0
	}
	d := base
	for i := 1; i < attempt; i++ {
		d <<= 1
		if limit > 0 && d >= limit {
			return limit
		}
		if d <= 0 {
			return limit
		}
	}
	if limit > 0 && d > limit {
		return limit
	}
	return d
}
