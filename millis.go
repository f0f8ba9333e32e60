package timecache

import "strings"

// AppendMillis appends formatted to dst replacing every run of Placeholder
// with the millisecond of second of timeMillis, zero padded to the run length.
func AppendMillis(dst []byte, formatted string, timeMillis int64) []byte {
	ms := int(floorMod(timeMillis, 1000))

	for {
		i := strings.IndexByte(formatted, Placeholder)
		if i == -1 {
			return append(dst, formatted...)
		}

		dst = append(dst, formatted[:i]...)

		j := i + 1
		for j < len(formatted) && formatted[j] == Placeholder {
			j++
		}

		dst = appendInt(dst, ms, j-i)
		formatted = formatted[j:]
	}
}

// WithMillis returns formatted with Placeholder runs replaced by milliseconds of timeMillis.
func WithMillis(formatted string, timeMillis int64) string {
	if strings.IndexByte(formatted, Placeholder) == -1 {
		return formatted
	}

	return string(AppendMillis(make([]byte, 0, len(formatted)+2), formatted, timeMillis))
}
