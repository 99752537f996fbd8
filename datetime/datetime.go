package datetime

// A DateTime is a Date paired with a Time: a civil timestamped instant
// with microsecond resolution and no time zone. Its invariants are the
// union of the two parts', and arithmetic carries across the day boundary
// into month and year.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime validates all seven fields; the bounds are those of NewDate
// and NewTime combined.
func NewDateTime(year, month, day, hour, minute, second, microsecond int) (DateTime, error) {
	if err := checkDateFields(year, month, day); err != nil {
		return DateTime{}, err
	}
	if err := checkTimeFields(hour, minute, second, microsecond); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		date: dateUnchecked(year, month, day),
		time: timeUnchecked(hour, minute, second, microsecond),
	}, nil
}

// Combine pairs a date with a clock time.
func Combine(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// DateTimeFromOrdinal returns midnight of the given day ordinal.
func DateTimeFromOrdinal(ordinal int) (DateTime, error) {
	d, err := DateFromOrdinal(ordinal)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d}, nil
}

// DateTimeFromISOCalendar returns midnight of the given ISO week date.
func DateTimeFromISOCalendar(iso ISOCalendarDate) (DateTime, error) {
	d, err := DateFromISOCalendar(iso)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d}, nil
}

// MinDateTime returns 0001-01-01T00:00:00.
func MinDateTime() DateTime { return DateTime{date: MinDate()} }

// MaxDateTime returns 9999-12-31T23:59:59.999999.
func MaxDateTime() DateTime { return DateTime{date: MaxDate(), time: MaxTime()} }

// DateOf returns the calendar part.
func (dt DateTime) DateOf() Date { return dt.date }

// TimeOf returns the clock part.
func (dt DateTime) TimeOf() Time { return dt.time }

func (dt DateTime) Year() int        { return dt.date.Year() }
func (dt DateTime) Month() int       { return dt.date.Month() }
func (dt DateTime) Day() int         { return dt.date.Day() }
func (dt DateTime) Hour() int        { return dt.time.Hour() }
func (dt DateTime) Minute() int      { return dt.time.Minute() }
func (dt DateTime) Second() int      { return dt.time.Second() }
func (dt DateTime) Microsecond() int { return dt.time.Microsecond() }

// Ordinal returns the day ordinal of the calendar part.
func (dt DateTime) Ordinal() int { return dt.date.Ordinal() }

// Weekday returns the day of week with Monday==0 .. Sunday==6.
func (dt DateTime) Weekday() int { return dt.date.Weekday() }

// ISOWeekday returns the day of week with Monday==1 .. Sunday==7.
func (dt DateTime) ISOWeekday() int { return dt.date.ISOWeekday() }

// ISOCalendar returns the (ISO year, week, weekday) representation of the
// calendar part.
func (dt DateTime) ISOCalendar() ISOCalendarDate { return dt.date.ISOCalendar() }

// AddDelta returns dt shifted forward by delta, carrying microseconds
// through seconds, minutes, hours and days into month and year as needed.
func (dt DateTime) AddDelta(delta Delta) (DateTime, error) {
	return dt.shift(delta, 1)
}

// SubDelta returns dt shifted backward by delta.
func (dt DateTime) SubDelta(delta Delta) (DateTime, error) {
	return dt.shift(delta, -1)
}

func (dt DateTime) shift(delta Delta, sign int64) (DateTime, error) {
	y := int64(dt.date.year)
	mo := int64(dt.date.month)
	d := int64(dt.date.day) + sign*int64(delta.days)
	h := int64(dt.time.hour)
	mi := int64(dt.time.minute)
	s := int64(dt.time.second) + sign*int64(delta.seconds)
	us := int64(dt.time.microsecond) + sign*int64(delta.microseconds)

	if err := normalizeDateTime(&y, &mo, &d, &h, &mi, &s, &us); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		date: dateUnchecked(int(y), int(mo), int(d)),
		time: timeUnchecked(int(h), int(mi), int(s), int(us)),
	}, nil
}

// Sub returns the signed distance dt - other. Each field difference is
// taken independently (day ordinals, then hours, minutes, seconds and
// microseconds) and the raw triple folds through Delta's own
// normalization.
func (dt DateTime) Sub(other DateTime) Delta {
	days := int64(dt.Ordinal() - other.Ordinal())
	seconds := int64(dt.Hour()-other.Hour())*3600 +
		int64(dt.Minute()-other.Minute())*60 +
		int64(dt.Second()-other.Second())
	micros := int64(dt.Microsecond() - other.Microsecond())

	// The components are bounded by the calendar range, so
	// normalization cannot fail here.
	delta, _ := NewDelta(days, seconds, micros)
	return delta
}

// Cmp compares two instants by their full
// (year, month, day, hour, minute, second, microsecond) tuples.
// It returns -1, 0 or +1.
func (dt DateTime) Cmp(other DateTime) int {
	if c := dt.date.Cmp(other.date); c != 0 {
		return c
	}
	return dt.time.Cmp(other.time)
}

// Equal reports whether the two instants are identical.
func (dt DateTime) Equal(other DateTime) bool { return dt == other }
