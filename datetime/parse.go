package datetime

import (
	"fmt"
	"strings"
)

// Interchange-string parsing. The contract throughout is reject, never
// truncate: a wrong digit count, a malformed separator or an unknown
// directive fails the whole parse.

// parseDigits reads exactly n ASCII digits from s.
func parseDigits(s string, n int) (int, bool) {
	if len(s) < n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// DateFromISOFormat parses exactly YYYY-MM-DD.
func DateFromISOFormat(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, parseErr("isoformat date", s)
	}
	year, ok1 := parseDigits(s, 4)
	month, ok2 := parseDigits(s[5:], 2)
	day, ok3 := parseDigits(s[8:], 2)
	if !ok1 || !ok2 || !ok3 {
		return Date{}, parseErr("isoformat date", s)
	}
	return NewDate(year, month, day)
}

// TimeFromISOFormat parses HH, HH:MM or HH:MM:SS, optionally followed by
// a .fff or .ffffff fraction. A trailing ±HH:MM[:SS[.ffffff]] zone
// designator is validated for shape and then discarded: Time carries no
// zone.
func TimeFromISOFormat(s string) (Time, error) {
	body := s
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		zone := s[i+1:]
		if !validZoneShape(zone) {
			return Time{}, parseErr("isoformat time", s)
		}
		body = s[:i]
	}
	h, m, sec, us, err := parseClock(body)
	if err != nil {
		return Time{}, parseErr("isoformat time", s)
	}
	return NewTime(h, m, sec, us)
}

// validZoneShape accepts HH:MM, HH:MM:SS and HH:MM:SS.ffffff offsets
// (the sign has already been consumed).
func validZoneShape(zone string) bool {
	if len(zone) != 5 && len(zone) != 8 && len(zone) != 15 {
		return false
	}
	_, _, _, _, err := parseClock(zone)
	return err == nil
}

// parseClock parses [HH[:MM[:SS[.fff|.ffffff]]]].
func parseClock(s string) (hour, minute, second, microsecond int, err error) {
	vals := [3]*int{&hour, &minute, &second}
	i := 0
	for k := 0; k < 3; k++ {
		v, ok := parseDigits(s[i:], 2)
		if !ok {
			return 0, 0, 0, 0, fmt.Errorf("%w: clock component", ErrParse)
		}
		*vals[k] = v
		i += 2
		if i == len(s) {
			return hour, minute, second, 0, nil
		}
		if s[i] == '.' {
			break
		}
		if s[i] != ':' || k == 2 {
			return 0, 0, 0, 0, fmt.Errorf("%w: clock separator", ErrParse)
		}
		i++
	}
	// Fraction of a second: exactly 3 or 6 digits.
	frac := s[i+1:]
	us, ok := parseDigits(frac, len(frac))
	if !ok || (len(frac) != 3 && len(frac) != 6) {
		return 0, 0, 0, 0, fmt.Errorf("%w: clock fraction", ErrParse)
	}
	if len(frac) == 3 {
		us *= 1000
	}
	return hour, minute, second, us, nil
}

// DateTimeFromISOFormat parses YYYY-MM-DD and a time part joined by 'T'
// or a single space.
func DateTimeFromISOFormat(s string) (DateTime, error) {
	if len(s) < 11 || (s[10] != 'T' && s[10] != ' ') {
		return DateTime{}, parseErr("isoformat datetime", s)
	}
	d, err := DateFromISOFormat(s[:10])
	if err != nil {
		return DateTime{}, parseErr("isoformat datetime", s)
	}
	t, err := TimeFromISOFormat(s[11:])
	if err != nil {
		return DateTime{}, parseErr("isoformat datetime", s)
	}
	return Combine(d, t), nil
}

// Strptime parses value against a strftime-style layout with fixed-width
// numeric directives:
//
//	%Y four-digit year   %m month   %d day
//	%H hour              %M minute  %S second
//	%f six-digit microsecond        %% literal percent
//
// Literal layout bytes must match exactly. The parsed fields go through
// full construction validation, so an unset month or day fails with a
// range error just as an explicit zero would.
func Strptime(value, layout string) (DateTime, error) {
	var year, month, day, hour, minute, second, microsecond int

	li, vi := 0, 0
	for li < len(layout) {
		if layout[li] != '%' {
			if vi >= len(value) || value[vi] != layout[li] {
				return DateTime{}, strptimeErr(value, layout)
			}
			li++
			vi++
			continue
		}
		li++
		if li == len(layout) {
			return DateTime{}, strptimeErr(value, layout)
		}

		var dst *int
		var width int
		switch layout[li] {
		case 'Y':
			dst, width = &year, 4
		case 'm':
			dst, width = &month, 2
		case 'd':
			dst, width = &day, 2
		case 'H':
			dst, width = &hour, 2
		case 'M':
			dst, width = &minute, 2
		case 'S':
			dst, width = &second, 2
		case 'f':
			dst, width = &microsecond, 6
		case '%':
			if vi >= len(value) || value[vi] != '%' {
				return DateTime{}, strptimeErr(value, layout)
			}
			li++
			vi++
			continue
		default:
			return DateTime{}, strptimeErr(value, layout)
		}

		v, ok := parseDigits(value[vi:], width)
		if !ok {
			return DateTime{}, strptimeErr(value, layout)
		}
		*dst = v
		li++
		vi += width
	}
	if vi != len(value) {
		return DateTime{}, strptimeErr(value, layout)
	}
	return NewDateTime(year, month, day, hour, minute, second, microsecond)
}

func strptimeErr(value, layout string) error {
	return fmt.Errorf("%w: value %q does not match layout %q", ErrParse, value, layout)
}
