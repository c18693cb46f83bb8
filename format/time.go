package format

import (
	"time"

	"github.com/arloliu/numtext/charconv"
	"github.com/arloliu/numtext/internal/pool"
	"github.com/arloliu/numtext/internal/tables"
)

// formatDuration renders a time.Duration scaled to the unit its verb selects:
// 'h' hours, 'm' minutes, 's' seconds, 'M' milliseconds, 'U' microseconds,
// 'N' (and the default) nanoseconds, 'a' the largest unit the magnitude
// fills. The '#' flag appends the unit suffix; 'a' implies it.
func formatDuration(out Output, d time.Duration, spec *Spec) error {
	if spec.extra {
		return badVerb(spec)
	}

	unit := time.Nanosecond
	suffix := "ns"
	switch spec.Verb {
	case 'h':
		unit, suffix = time.Hour, "h"
	case 'm':
		unit, suffix = time.Minute, "min"
	case 's':
		unit, suffix = time.Second, "s"
	case 'M':
		unit, suffix = time.Millisecond, "ms"
	case 'U':
		unit, suffix = time.Microsecond, "us"
	case 'N', 0:
	case 'a':
		unit, suffix = autoDurationUnit(d)
		alt := *spec
		alt.Alternate = true

		return writeDuration(out, d, unit, suffix, &alt)
	default:
		return badVerb(spec)
	}

	return writeDuration(out, d, unit, suffix, spec)
}

func autoDurationUnit(d time.Duration) (time.Duration, string) {
	if d < 0 {
		d = -d
	}
	switch {
	case d >= time.Hour:
		return time.Hour, "h"
	case d >= time.Minute:
		return time.Minute, "min"
	case d >= time.Second:
		return time.Second, "s"
	case d >= time.Millisecond:
		return time.Millisecond, "ms"
	case d >= time.Microsecond:
		return time.Microsecond, "us"
	default:
		return time.Nanosecond, "ns"
	}
}

// writeDuration renders the scaled value into a scratch buffer, so value and
// suffix align as one field. A precision selects fractional units; without
// one the value truncates to a whole count.
func writeDuration(out Output, d, unit time.Duration, suffix string, spec *Spec) error {
	buf := pool.GetLineBuffer()
	defer pool.PutLineBuffer(buf)

	inner := makeSpec("")
	inner.Sign = spec.Sign
	if spec.Prec >= 0 {
		inner.Prec = spec.Prec
		inner.Verb = 'f'
		if err := formatFloat(buf, float64(d)/float64(unit), &inner, 6); err != nil {
			return err
		}
	} else {
		inner.Verb = 'd'
		if err := formatSigned(buf, int64(d/unit), &inner); err != nil {
			return err
		}
	}
	if spec.Alternate {
		buf.AppendString(suffix)
	}
	alignBytes(out, buf.Bytes(), spec)

	return nil
}

// formatTime renders a time.Time in its own location: 'd' the date
// (2006-01-02), 't' the clock (15:04:05), 'T' the clock with milliseconds,
// 'f' date and clock with milliseconds, default date and clock without.
func formatTime(out Output, t time.Time, spec *Spec) error {
	if spec.extra {
		return badVerb(spec)
	}

	var buf [48]byte
	n := 0
	put2 := func(v int) {
		buf[n] = tables.TwoDigits[v*2]
		buf[n+1] = tables.TwoDigits[v*2+1]
		n += 2
	}
	putDate := func() {
		year, month, day := t.Date()
		if year >= 0 && year <= 9999 {
			put2(year / 100)
			put2(year % 100)
		} else {
			// Out of the two-digit table's range; encode and shift forward.
			span := charconv.EncodeInt(buf[:n+21], int64(year), 10, false, false)
			n += copy(buf[n:], span)
		}
		buf[n] = '-'
		n++
		put2(int(month))
		buf[n] = '-'
		n++
		put2(day)
	}
	putClock := func() {
		hour, min, sec := t.Clock()
		put2(hour)
		buf[n] = ':'
		n++
		put2(min)
		buf[n] = ':'
		n++
		put2(sec)
	}
	putMillis := func() {
		ms := t.Nanosecond() / int(time.Millisecond)
		buf[n] = '.'
		buf[n+1] = '0' + byte(ms/100)
		buf[n+2] = '0' + byte(ms/10%10)
		buf[n+3] = '0' + byte(ms%10)
		n += 4
	}

	switch spec.Verb {
	case 'd':
		putDate()
	case 't':
		putClock()
	case 'T':
		putClock()
		putMillis()
	case 'f':
		putDate()
		buf[n] = ' '
		n++
		putClock()
		putMillis()
	case 0:
		putDate()
		buf[n] = ' '
		n++
		putClock()
	default:
		return badVerb(spec)
	}
	alignBytes(out, buf[:n], spec)

	return nil
}
