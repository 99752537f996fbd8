package datetime

// A Time is a clock time within an unspecified day: no date association
// and no time zone. The zero value is midnight. Time supports ordering
// and equality but no arithmetic.
type Time struct {
	hour        uint8
	minute      uint8
	second      uint8
	microsecond uint32
}

// NewTime validates every field against its declared range: hour in
// [0,23], minute and second in [0,59], microsecond in [0,999999].
func NewTime(hour, minute, second, microsecond int) (Time, error) {
	if err := checkTimeFields(hour, minute, second, microsecond); err != nil {
		return Time{}, err
	}
	return timeUnchecked(hour, minute, second, microsecond), nil
}

func timeUnchecked(hour, minute, second, microsecond int) Time {
	return Time{
		hour:        uint8(hour),
		minute:      uint8(minute),
		second:      uint8(second),
		microsecond: uint32(microsecond),
	}
}

func checkTimeFields(hour, minute, second, microsecond int) error {
	if hour < 0 || hour > 23 {
		return rangeErr("time.hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return rangeErr("time.minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return rangeErr("time.second", int64(second), 0, 59)
	}
	if microsecond < 0 || microsecond > 999999 {
		return rangeErr("time.microsecond", int64(microsecond), 0, 999999)
	}
	return nil
}

// MinTime returns midnight, 00:00:00.000000.
func MinTime() Time { return Time{} }

// MaxTime returns 23:59:59.999999.
func MaxTime() Time { return timeUnchecked(23, 59, 59, 999999) }

// Hour returns the hour, in [0,23].
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute, in [0,59].
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second, in [0,59].
func (t Time) Second() int { return int(t.second) }

// Microsecond returns the microsecond, in [0,999999].
func (t Time) Microsecond() int { return int(t.microsecond) }

// IsZero reports whether t is exactly midnight.
func (t Time) IsZero() bool { return t == Time{} }

// Cmp compares two clock times by their
// (hour, minute, second, microsecond) tuples. It returns -1, 0 or +1.
func (t Time) Cmp(other Time) int {
	if c := compareInts(int64(t.hour), int64(other.hour)); c != 0 {
		return c
	}
	if c := compareInts(int64(t.minute), int64(other.minute)); c != 0 {
		return c
	}
	if c := compareInts(int64(t.second), int64(other.second)); c != 0 {
		return c
	}
	return compareInts(int64(t.microsecond), int64(other.microsecond))
}

// Equal reports whether the two times are identical.
func (t Time) Equal(other Time) bool { return t == other }
