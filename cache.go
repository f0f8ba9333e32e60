package timecache

import (
	"time"
)

const (
	// DefaultCapacity is the number of cached seconds used when Config.Capacity is zero.
	DefaultCapacity = 60

	// DefaultPattern is used when neither Config.Pattern nor Config.Parent is set.
	DefaultPattern = "dd-MMM-yyyy HH:mm:ss.SSS"
)

// Source returns formatted timestamps for epoch milliseconds.
type Source interface {
	// Lookup returns the value formatted for the whole second containing timeMillis.
	Lookup(timeMillis int64) string

	// Pattern returns the normalized pattern, Placeholder marks millisecond positions.
	Pattern() string
}

// Engine formats time values, it is invoked on cache misses.
//
// Engine must format the normalized pattern of the cache it is configured for.
type Engine interface {
	Format(t time.Time) string
}

// Metric names.
const (
	MetricHit      = "timecache_hit"
	MetricMiss     = "timecache_miss"
	MetricReset    = "timecache_reset"
	MetricShift    = "timecache_shift"
	MetricFormat   = "timecache_format"
	MetricDelegate = "timecache_delegate"
)

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}

	return q
}

// floorMod returns a - b*floor(a/b) for b > 0, the result is in [0, b).
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}
