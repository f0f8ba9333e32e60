package timecache

import (
	"fmt"
	"time"
)

// supportedLetters lists pattern letters understood by CompileLayout.
const supportedLetters = "GyMdHkKhmsSEuDazZX"

var _ Engine = &Layout{}

// field is either a literal run or a repeated pattern letter.
type field struct {
	letter byte
	width  int
	lit    string
}

// Layout is a compiled date/time pattern.
//
// Pattern letters follow java.text.SimpleDateFormat: runs of the same ASCII letter form a field,
// text in single quotes is literal and two single quotes produce one. Other characters,
// including Placeholder, are copied as is. Month and weekday names are English.
//
// Layout is immutable and safe for concurrent use.
type Layout struct {
	pattern string
	loc     *time.Location
	fields  []field
}

// CompileLayout compiles pattern into a Layout that formats in the local time zone.
func CompileLayout(pattern string) (*Layout, error) {
	return CompileLayoutIn(pattern, time.Local)
}

// CompileLayoutIn compiles pattern into a Layout that formats in loc, nil means time.Local.
func CompileLayoutIn(pattern string, loc *time.Location) (*Layout, error) {
	if loc == nil {
		loc = time.Local
	}

	var (
		fields  []field
		lit     []byte
		inQuote bool
	)

	flush := func() {
		if len(lit) > 0 {
			fields = append(fields, field{lit: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]

		switch {
		case c == quote && i+1 < len(pattern) && pattern[i+1] == quote:
			lit = append(lit, quote)
			i += 2
		case c == quote:
			inQuote = !inQuote
			i++
		case inQuote || !isLetter(c):
			lit = append(lit, c)
			i++
		default:
			if !isSupportedLetter(c) {
				return nil, fmt.Errorf("%w: illegal letter %q at position %d in %q", ErrInvalidPattern, c, i, pattern)
			}

			j := i + 1
			for j < len(pattern) && pattern[j] == c {
				j++
			}

			flush()
			fields = append(fields, field{letter: c, width: j - i})
			i = j
		}
	}

	if inQuote {
		return nil, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidPattern, pattern)
	}

	flush()

	return &Layout{pattern: pattern, loc: loc, fields: fields}, nil
}

// Pattern returns the source pattern.
func (l *Layout) Pattern() string {
	return l.pattern
}

// Location returns the time zone used for formatting.
func (l *Layout) Location() *time.Location {
	return l.loc
}

// Format returns t formatted with the layout.
func (l *Layout) Format(t time.Time) string {
	return string(l.AppendFormat(make([]byte, 0, len(l.pattern)+8), t))
}

// AppendFormat appends t formatted with the layout to b.
func (l *Layout) AppendFormat(b []byte, t time.Time) []byte {
	t = t.In(l.loc)

	for _, f := range l.fields {
		if f.letter == 0 {
			b = append(b, f.lit...)

			continue
		}

		b = f.appendTo(b, t)
	}

	return b
}

func (f field) appendTo(b []byte, t time.Time) []byte {
	switch f.letter {
	case 'G':
		if t.Year() > 0 {
			return append(b, "AD"...)
		}

		return append(b, "BC"...)
	case 'y':
		year := t.Year()
		if f.width == 2 {
			if year < 0 {
				year = -year
			}

			return appendInt(b, year%100, 2)
		}

		return appendInt(b, year, f.width)
	case 'M':
		return appendName(b, t.Month().String(), int(t.Month()), f.width)
	case 'd':
		return appendInt(b, t.Day(), f.width)
	case 'H':
		return appendInt(b, t.Hour(), f.width)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}

		return appendInt(b, h, f.width)
	case 'K':
		return appendInt(b, t.Hour()%12, f.width)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}

		return appendInt(b, h, f.width)
	case 'm':
		return appendInt(b, t.Minute(), f.width)
	case 's':
		return appendInt(b, t.Second(), f.width)
	case 'S':
		return appendInt(b, t.Nanosecond()/int(time.Millisecond), f.width)
	case 'E':
		// Numeric weekdays are not part of the grammar, short names cover widths below 4.
		w := f.width
		if w < 3 {
			w = 3
		}

		return appendName(b, t.Weekday().String(), 0, w)
	case 'u':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}

		return appendInt(b, wd, f.width)
	case 'D':
		return appendInt(b, t.YearDay(), f.width)
	case 'a':
		if t.Hour() < 12 {
			return append(b, "AM"...)
		}

		return append(b, "PM"...)
	case 'z':
		name, _ := t.Zone()

		return append(b, name...)
	case 'Z':
		_, offset := t.Zone()

		return appendOffset(b, offset, 2, false)
	case 'X':
		_, offset := t.Zone()
		if offset == 0 {
			return append(b, 'Z')
		}

		return appendOffset(b, offset, f.width, f.width >= 3)
	}

	return b
}

// appendName writes a full name for width >= 4, a 3-letter abbreviation for width 3, a number otherwise.
func appendName(b []byte, name string, num, width int) []byte {
	switch {
	case width >= 4:
		return append(b, name...)
	case width == 3:
		return append(b, name[:3]...)
	default:
		return appendInt(b, num, width)
	}
}

// appendOffset writes a zone offset as +hh, +hhmm or +hh:mm.
func appendOffset(b []byte, offset, width int, colon bool) []byte {
	if offset < 0 {
		b = append(b, '-')
		offset = -offset
	} else {
		b = append(b, '+')
	}

	b = appendInt(b, offset/3600, 2)
	if width == 1 {
		return b
	}

	if colon {
		b = append(b, ':')
	}

	return appendInt(b, offset%3600/60, 2)
}

// appendInt writes v in decimal, left padded with zeros up to width digits.
func appendInt(b []byte, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}

	var buf [20]byte

	i := len(buf)
	for v >= 10 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	i--
	buf[i] = byte('0' + v)

	for w := len(buf) - i; w < width; w++ {
		b = append(b, '0')
	}

	return append(b, buf[i:]...)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSupportedLetter(c byte) bool {
	for i := 0; i < len(supportedLetters); i++ {
		if supportedLetters[i] == c {
			return true
		}
	}

	return false
}
