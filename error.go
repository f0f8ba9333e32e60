package timecache

// SentinelError is an error.
type SentinelError string

const (
	// ErrInvalidCapacity indicates a negative cache capacity.
	ErrInvalidCapacity = SentinelError("invalid capacity")

	// ErrInvalidPattern indicates a pattern that can not be compiled into a layout.
	ErrInvalidPattern = SentinelError("invalid pattern")

	// ErrPlaceholderInPattern indicates a raw pattern that already contains Placeholder.
	ErrPlaceholderInPattern = SentinelError("pattern contains millisecond placeholder")

	// ErrPatternMismatch indicates a child cache configured with a pattern different from its parent.
	ErrPatternMismatch = SentinelError("pattern does not match parent")

	// ErrLocationMismatch indicates a child cache configured with a location different from its parent.
	ErrLocationMismatch = SentinelError("location does not match parent")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
