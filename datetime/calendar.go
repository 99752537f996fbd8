package datetime

// Pure proleptic-Gregorian calendar math. Every conversion here is exactly
// invertible; the composite types delegate all calendar reasoning to these
// functions.

const (
	// MinYear and MaxYear bound the representable calendar range.
	MinYear = 1
	MaxYear = 9999

	// maxOrdinal is the ordinal of 9999-12-31.
	maxOrdinal = 3652059
)

// Days in 4, 100 and 400 year cycles.
const (
	daysIn4Years   = 1461
	daysIn100Years = 36524
	daysIn400Years = 146097
)

// daysInMonthTable and daysBeforeMonthTable use 1-based month indexing;
// entry 0 is unused. Both are correct for non-leap years only.
var daysInMonthTable = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var daysBeforeMonthTable = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of the given month in the given
// year. month must be in [1,12].
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonthTable[month]
}

func daysBeforeMonth(year, month int) int {
	days := daysBeforeMonthTable[month]
	if month > 2 && IsLeap(year) {
		days++
	}
	return days
}

// daysBeforeYear returns the number of days before January 1st of year.
// daysBeforeYear(1) == 0; valid for year >= 1 only.
func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// ymdToOrdinal converts a calendar date to its day ordinal, with
// 0001-01-01 as day 1.
func ymdToOrdinal(year, month, day int) int {
	return daysBeforeYear(year) + daysBeforeMonth(year, month) + day
}

// ordinalToYMD is the inverse of ymdToOrdinal.
//
// The leap pattern repeats every 400 years, so the ordinal is resolved by
// nested divmod over the 400/100/4/1 year cycles. When n100 or n1 lands on
// a full cycle (value 4) the date is December 31 at the end of that cycle
// and must be special-cased: the generic month estimate below would
// resolve it into the wrong year.
func ordinalToYMD(ordinal int) (year, month, day int) {
	n := ordinal - 1
	n400 := n / daysIn400Years
	n = n % daysIn400Years
	year = n400*400 + 1

	n100 := n / daysIn100Years
	n = n % daysIn100Years

	n4 := n / daysIn4Years
	n = n % daysIn4Years

	n1 := n / 365
	n = n % 365

	year += n100*100 + n4*4 + n1
	if n1 == 4 || n100 == 4 {
		return year - 1, 12, 31
	}

	// The month estimate is either exact or one too large.
	leap := n1 == 3 && (n4 != 24 || n100 == 3)
	month = (n + 50) >> 5
	preceding := daysBeforeMonthTable[month]
	if month > 2 && leap {
		preceding++
	}
	if preceding > n {
		month--
		preceding -= DaysInMonth(year, month)
	}
	return year, month, n - preceding + 1
}

// weekdayOf returns the day of week with Monday==0 .. Sunday==6.
// 0001-01-01 was a Monday; that constant anchors the whole numbering.
func weekdayOf(year, month, day int) int {
	return (ymdToOrdinal(year, month, day) + 6) % 7
}

// isoWeek1Monday returns the ordinal of the Monday starting ISO week 1 of
// year, the first calendar week containing a Thursday.
func isoWeek1Monday(year int) int {
	firstDay := ymdToOrdinal(year, 1, 1)
	firstWeekday := (firstDay + 6) % 7
	week1Monday := firstDay - firstWeekday
	if firstWeekday > 3 { // 1 Jan was Fri, Sat or Sun
		week1Monday += 7
	}
	return week1Monday
}

// ISOCalendarDate is a date expressed in the ISO week calendar:
// (ISO year, week 1-53, weekday 1-7 with Monday==1).
type ISOCalendarDate struct {
	Year    int
	Week    int
	Weekday int
}

func isoCalendarOf(year, month, day int) ISOCalendarDate {
	week1Monday := isoWeek1Monday(year)
	today := ymdToOrdinal(year, month, day)

	week, wd := divmod(int64(today-week1Monday), 7)
	if week < 0 {
		year--
		week1Monday = isoWeek1Monday(year)
		week, wd = divmod(int64(today-week1Monday), 7)
	} else if week >= 52 && today >= isoWeek1Monday(year+1) {
		year++
		week = 0
	}

	return ISOCalendarDate{Year: year, Week: int(week) + 1, Weekday: int(wd) + 1}
}

// isoCalendarToOrdinal validates iso and returns the matching day ordinal.
// Week 53 is accepted only for ISO years that actually have 53 weeks:
// years starting on a Thursday, and leap years starting on a Wednesday.
func isoCalendarToOrdinal(iso ISOCalendarDate) (int, error) {
	if iso.Year < MinYear || iso.Year > MaxYear {
		return 0, rangeErr("isocalendar.year", int64(iso.Year), MinYear, MaxYear)
	}
	if iso.Week < 1 || iso.Week > 53 {
		return 0, rangeErr("isocalendar.week", int64(iso.Week), 1, 53)
	}
	if iso.Week == 53 {
		firstWeekday := weekdayOf(iso.Year, 1, 1)
		if !(firstWeekday == 3 || (firstWeekday == 2 && IsLeap(iso.Year))) {
			return 0, rangeErr("isocalendar.week", int64(iso.Week), 1, 52)
		}
	}
	if iso.Weekday < 1 || iso.Weekday > 7 {
		return 0, rangeErr("isocalendar.weekday", int64(iso.Weekday), 1, 7)
	}
	return isoWeek1Monday(iso.Year) + (iso.Week-1)*7 + (iso.Weekday - 1), nil
}
