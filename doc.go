// Package timecache caches formatted timestamps with one second granularity.
//
// Formatting a timestamp for every logged event is expensive, while all events within
// a second share the same text except for milliseconds. A cache keeps formatted values
// for a sliding window of consecutive seconds in a cyclic buffer, the millisecond
// specifier of the pattern is replaced with Placeholder and patched in by the caller
// (see WithMillis and Stamp).
//
// Features:
//
//   - Leaf is a lock-free cache for a single owner goroutine.
//   - Shared guards a cache with a mutex and serves as a parent for many leaves.
//   - Leaf misses are delegated to the parent, so formatting happens once per second per pattern.
//   - LeafPool lends leaves to concurrent callers.
//   - Registry keeps one Shared cache per pattern.
//   - Patterns follow java.text.SimpleDateFormat letters, see Layout.
//   - Allows logging, stats collection, package zaplog adapts zap loggers.
package timecache
