package datetime

// A Date is a day in the proleptic Gregorian calendar, representable
// equivalently as an ordinal day count where 0001-01-01 is day 1.
// The zero value is not a valid date; construct through NewDate or one of
// the From* functions.
type Date struct {
	year  uint16
	month uint8
	day   uint8
}

// NewDate validates every field against its declared range: year in
// [1,9999], month in [1,12], day in [1, DaysInMonth(year, month)].
func NewDate(year, month, day int) (Date, error) {
	if err := checkDateFields(year, month, day); err != nil {
		return Date{}, err
	}
	return dateUnchecked(year, month, day), nil
}

// dateUnchecked skips validation; it is used internally once fields have
// already been normalized.
func dateUnchecked(year, month, day int) Date {
	return Date{year: uint16(year), month: uint8(month), day: uint8(day)}
}

func checkDateFields(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return rangeErr("date.year", int64(year), MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return rangeErr("date.month", int64(month), 1, 12)
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return rangeErr("date.day", int64(day), 1, int64(dim))
	}
	return nil
}

// DateFromOrdinal converts a day ordinal back to its calendar date.
func DateFromOrdinal(ordinal int) (Date, error) {
	if ordinal < 1 || ordinal > maxOrdinal {
		return Date{}, rangeErr("ordinal", int64(ordinal), 1, maxOrdinal)
	}
	y, m, d := ordinalToYMD(ordinal)
	return dateUnchecked(y, m, d), nil
}

// DateFromISOCalendar is the inverse of ISOCalendar. The resulting
// calendar year may legitimately differ from the requested ISO year near
// year boundaries.
func DateFromISOCalendar(iso ISOCalendarDate) (Date, error) {
	ordinal, err := isoCalendarToOrdinal(iso)
	if err != nil {
		return Date{}, err
	}
	return DateFromOrdinal(ordinal)
}

// MinDate returns 0001-01-01.
func MinDate() Date { return dateUnchecked(MinYear, 1, 1) }

// MaxDate returns 9999-12-31.
func MaxDate() Date { return dateUnchecked(MaxYear, 12, 31) }

// Year returns the calendar year, in [1,9999].
func (d Date) Year() int { return int(d.year) }

// Month returns the calendar month, in [1,12].
func (d Date) Month() int { return int(d.month) }

// Day returns the day of month, in [1,31].
func (d Date) Day() int { return int(d.day) }

// Ordinal returns the linear day ordinal, with 0001-01-01 as day 1.
func (d Date) Ordinal() int {
	return ymdToOrdinal(d.Year(), d.Month(), d.Day())
}

// Weekday returns the day of week with Monday==0 .. Sunday==6.
func (d Date) Weekday() int {
	return weekdayOf(d.Year(), d.Month(), d.Day())
}

// ISOWeekday returns the day of week with Monday==1 .. Sunday==7.
func (d Date) ISOWeekday() int { return d.Weekday() + 1 }

// ISOCalendar returns the (ISO year, week, weekday) representation.
func (d Date) ISOCalendar() ISOCalendarDate {
	return isoCalendarOf(d.Year(), d.Month(), d.Day())
}

// AddDelta returns the date delta.Days() later. Only the day component of
// the delta participates; seconds and microseconds are ignored, matching
// the day resolution of Date.
func (d Date) AddDelta(delta Delta) (Date, error) {
	return d.shiftDays(int64(delta.days))
}

// SubDelta returns the date delta.Days() earlier.
func (d Date) SubDelta(delta Delta) (Date, error) {
	return d.shiftDays(-int64(delta.days))
}

func (d Date) shiftDays(days int64) (Date, error) {
	y := int64(d.year)
	m := int64(d.month)
	dd := int64(d.day) + days
	if err := normalizeYMD(&y, &m, &dd); err != nil {
		return Date{}, err
	}
	return dateUnchecked(int(y), int(m), int(dd)), nil
}

// Sub returns the signed day distance d - other as a Delta with zero
// seconds and microseconds. A whole-day integer needs no normalization
// pass, and the ordinal difference always fits the delta day range.
func (d Date) Sub(other Date) Delta {
	return Delta{days: int32(d.Ordinal() - other.Ordinal())}
}

// Cmp compares two dates chronologically by their
// (year, month, day) tuples. It returns -1, 0 or +1.
func (d Date) Cmp(other Date) int {
	if c := compareInts(int64(d.year), int64(other.year)); c != 0 {
		return c
	}
	if c := compareInts(int64(d.month), int64(other.month)); c != 0 {
		return c
	}
	return compareInts(int64(d.day), int64(other.day))
}

// Equal reports whether the two dates denote the same day.
func (d Date) Equal(other Date) bool { return d == other }
