package datetime

import (
	"fmt"
	"time"
)

// Local-clock plumbing. The host zone database (through the Go runtime)
// is treated as an opaque deterministic function from epoch-relative
// instants to local calendar fields; everything else here is closed-form
// arithmetic.

const (
	// unixEpochOrdinal is the day ordinal of 1970-01-01.
	unixEpochOrdinal = 719163

	// unixEpochSeconds is that ordinal expressed in seconds since
	// 0001-01-01.
	unixEpochSeconds int64 = unixEpochOrdinal * 24 * 60 * 60

	// maxFoldSeconds bounds the search window when inverting a local
	// time: as of tzdata 2015f the largest backward transition in the
	// IANA database is 23 hours (Kwajalein, 1969-09-30).
	maxFoldSeconds int64 = 24 * 3600
)

// Now returns the current local civil time with microsecond resolution.
func Now() (DateTime, error) {
	return DateTimeFromTimestamp(time.Now().UnixMicro())
}

// Today returns the current local calendar date.
func Today() (Date, error) {
	dt, err := Now()
	if err != nil {
		return Date{}, err
	}
	return dt.DateOf(), nil
}

// DateTimeFromTimestamp converts microseconds since the Unix epoch to the
// local civil time designating that instant.
func DateTimeFromTimestamp(us int64) (DateTime, error) {
	sec, rem := divmod(us, usPerSecond)
	y, mo, d, h, mi, s := localCivil(sec)
	return NewDateTime(y, mo, d, h, mi, s, int(rem))
}

// DateFromTimestamp converts microseconds since the Unix epoch to the
// local calendar date containing that instant.
func DateFromTimestamp(us int64) (Date, error) {
	dt, err := DateTimeFromTimestamp(us)
	if err != nil {
		return Date{}, err
	}
	return dt.DateOf(), nil
}

// Timestamp returns the instant designated by dt on the local clock, in
// microseconds since the Unix epoch. When a backward transition makes the
// civil time ambiguous the earlier instant is chosen; TimestampFold
// selects the later one.
func (dt DateTime) Timestamp() (int64, error) {
	return dt.timestamp(0)
}

// TimestampFold is Timestamp with an explicit fold selector: fold 0
// prefers the earlier of two instants mapping to the same civil time,
// fold 1 the later.
func (dt DateTime) TimestampFold(fold int) (int64, error) {
	if fold != 0 && fold != 1 {
		return 0, rangeErr("fold", int64(fold), 0, 1)
	}
	return dt.timestamp(fold)
}

func (dt DateTime) timestamp(fold int) (int64, error) {
	sec, err := localToSeconds(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), fold)
	if err != nil {
		return 0, err
	}
	sec -= unixEpochSeconds
	us, err := mulCheck(sec, usPerSecond)
	if err != nil {
		return 0, fmt.Errorf("%w: timestamp exceeds int64 microseconds", ErrRange)
	}
	return us + int64(dt.Microsecond()), nil
}

// localCivil returns the local calendar fields for the given seconds
// since the Unix epoch.
func localCivil(unixSec int64) (year, month, day, hour, minute, second int) {
	t := time.Unix(unixSec, 0).In(time.Local)
	y, mo, d := t.Date()
	return y, int(mo), d, t.Hour(), t.Minute(), t.Second()
}

// utcToSeconds maps calendar fields to seconds since 0001-01-01 with no
// zone applied.
func utcToSeconds(year, month, day, hour, minute, second int) (int64, error) {
	if year < MinYear || year > MaxYear {
		return 0, rangeErr("year", int64(year), MinYear, MaxYear)
	}
	ordinal := int64(ymdToOrdinal(year, month, day))
	return ((ordinal*24+int64(hour))*60+int64(minute))*60 + int64(second), nil
}

// local maps u (seconds since 0001-01-01, UTC) to the seconds-since-0001
// reading of the local wall clock at that instant.
func local(u int64) (int64, error) {
	y, mo, d, h, mi, s := localCivil(u - unixEpochSeconds)
	return utcToSeconds(y, mo, d, h, mi, s)
}

// localToSeconds solves t = local(u) for u, where t is the wall-clock
// reading built from the given fields. A backward transition can make two
// instants match (fold selects which); a forward transition can make
// none, in which case the result is extrapolated across the gap.
func localToSeconds(year, month, day, hour, minute, second, fold int) (int64, error) {
	t, err := utcToSeconds(year, month, day, hour, minute, second)
	if err != nil {
		return 0, err
	}
	lt, err := local(t)
	if err != nil {
		return 0, err
	}
	a := lt - t
	u1 := t - a
	t1, err := local(u1)
	if err != nil {
		return 0, err
	}
	var b int64
	if t1 == t {
		// One solution found; check one fold window away for the
		// other candidate offset.
		u2 := u1 - maxFoldSeconds
		if fold != 0 {
			u2 = u1 + maxFoldSeconds
		}
		lt, err = local(u2)
		if err != nil {
			return 0, err
		}
		b = lt - u2
		if a == b {
			return u1, nil
		}
	} else {
		b = t1 - u1
	}
	u2 := t - b
	t2, err := local(u2)
	if err != nil {
		return 0, err
	}
	if t2 == t {
		return u2, nil
	}
	if t1 == t {
		return u1, nil
	}
	// Both offsets known but neither inverts exactly: t is inside a
	// forward-transition gap.
	if fold != 0 {
		return min(u1, u2), nil
	}
	return max(u1, u2), nil
}
