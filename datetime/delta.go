package datetime

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Microsecond unit conversions.
const (
	usPerMilli    int64 = 1000
	usPerSecond   int64 = 1000 * usPerMilli
	usPerMinute   int64 = 60 * usPerSecond
	usPerHour     int64 = 60 * usPerMinute
	usPerDay      int64 = 24 * usPerHour
	usPerWeek     int64 = 7 * usPerDay
	secondsPerDay int64 = 24 * 60 * 60
)

// MaxDeltaDays bounds the day magnitude of a Delta.
const MaxDeltaDays = 999999999

// deltaCtx sizes decimal intermediates for the widest product this
// package can produce: a maximal total-microsecond count times an int64
// scalar is under 40 digits.
var deltaCtx = apd.BaseContext.WithPrecision(50)

// A Delta is a signed duration held as a canonical
// (days, seconds, microseconds) triple with
//
//	0 <= seconds < 86400
//	0 <= microseconds < 1000000
//	-999999999 <= days <= 999999999
//
// The sign of the whole value is carried by the day component, so for
// example -1 microsecond is (-1 day, 86399 s, 999999 us). Deltas are
// immutable; every operation returns a new canonical value.
type Delta struct {
	days         int32
	seconds      int32
	microseconds int32
}

// Components specifies a duration as a sum of mixed units. All fields may
// be negative or out of their natural range; the sum is folded into one
// canonical Delta.
type Components struct {
	Weeks        int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
}

// NewDelta returns the canonical Delta equal to
// days + seconds + microseconds.
func NewDelta(days, seconds, microseconds int64) (Delta, error) {
	if err := normalizeDSUS(&days, &seconds, &microseconds); err != nil {
		return Delta{}, err
	}
	return deltaFromNormalized(days, seconds, microseconds)
}

func deltaFromNormalized(days, seconds, microseconds int64) (Delta, error) {
	if days < -MaxDeltaDays || days > MaxDeltaDays {
		return Delta{}, rangeErr("delta.days", days, -MaxDeltaDays, MaxDeltaDays)
	}
	return Delta{
		days:         int32(days),
		seconds:      int32(seconds),
		microseconds: int32(microseconds),
	}, nil
}

// FromComponents sums every unit of c into a total microsecond count and
// re-decomposes it canonically, so Components{Days: 50, Weeks: 2,
// Milliseconds: 29000} folds into one coherent triple. The accumulation
// is exact at any magnitude; only a day count beyond MaxDeltaDays fails.
func FromComponents(c Components) (Delta, error) {
	total := new(apd.Decimal)
	for _, part := range []struct {
		value  int64
		factor int64
	}{
		{c.Weeks, usPerWeek},
		{c.Days, usPerDay},
		{c.Hours, usPerHour},
		{c.Minutes, usPerMinute},
		{c.Seconds, usPerSecond},
		{c.Milliseconds, usPerMilli},
		{c.Microseconds, 1},
	} {
		term := new(apd.Decimal)
		if _, err := deltaCtx.Mul(term, apd.New(part.value, 0), apd.New(part.factor, 0)); err != nil {
			return Delta{}, fmt.Errorf("%w: component accumulation: %v", ErrRange, err)
		}
		if _, err := deltaCtx.Add(total, total, term); err != nil {
			return Delta{}, fmt.Errorf("%w: component accumulation: %v", ErrRange, err)
		}
	}
	return deltaFromMicrosDec(total)
}

// Convenience single-unit constructors, mirroring construction from the
// individual Components fields.

func Weeks(n int64) (Delta, error)        { return FromComponents(Components{Weeks: n}) }
func Days(n int64) (Delta, error)         { return FromComponents(Components{Days: n}) }
func Hours(n int64) (Delta, error)        { return FromComponents(Components{Hours: n}) }
func Minutes(n int64) (Delta, error)      { return FromComponents(Components{Minutes: n}) }
func Seconds(n int64) (Delta, error)      { return FromComponents(Components{Seconds: n}) }
func Milliseconds(n int64) (Delta, error) { return FromComponents(Components{Milliseconds: n}) }
func Microseconds(n int64) (Delta, error) { return FromComponents(Components{Microseconds: n}) }

// FromDuration converts a time.Duration, truncating sub-microsecond
// precision toward zero.
func FromDuration(d time.Duration) (Delta, error) {
	return Microseconds(d.Microseconds())
}

// MinDelta returns the most negative representable Delta.
func MinDelta() Delta {
	return Delta{days: -MaxDeltaDays}
}

// MaxDelta returns the largest representable Delta.
func MaxDelta() Delta {
	return Delta{days: MaxDeltaDays, seconds: int32(secondsPerDay - 1), microseconds: int32(usPerSecond - 1)}
}

// Resolution returns the smallest positive Delta, one microsecond.
func Resolution() Delta {
	return Delta{microseconds: 1}
}

// Days returns the day component of the canonical triple.
func (d Delta) Days() int { return int(d.days) }

// Seconds returns the second component, in [0, 86400).
func (d Delta) Seconds() int { return int(d.seconds) }

// Microseconds returns the microsecond component, in [0, 1000000).
func (d Delta) Microseconds() int { return int(d.microseconds) }

// IsZero reports whether the delta is the zero duration.
func (d Delta) IsZero() bool {
	return d.days == 0 && d.seconds == 0 && d.microseconds == 0
}

// microsDec returns the exact total microsecond count as a decimal. The
// maximum magnitude exceeds int64, so totals are widened before any
// multiplication.
func (d Delta) microsDec() *apd.Decimal {
	// (days*86400 + seconds) fits int64 comfortably; only the final
	// scaling to microseconds can exceed it.
	secs := int64(d.days)*secondsPerDay + int64(d.seconds)
	total := new(apd.Decimal)
	deltaCtx.Mul(total, apd.New(secs, 0), apd.New(usPerSecond, 0))
	deltaCtx.Add(total, total, apd.New(int64(d.microseconds), 0))
	return total
}

// divmodDec computes the floored quotient and remainder of x/y for any
// non-zero y, matching divmod's semantics at decimal width.
func divmodDec(x, y *apd.Decimal) (*apd.Decimal, *apd.Decimal, error) {
	q := new(apd.Decimal)
	r := new(apd.Decimal)
	if _, err := deltaCtx.QuoInteger(q, x, y); err != nil {
		return nil, nil, fmt.Errorf("%w: wide division: %v", ErrRange, err)
	}
	if _, err := deltaCtx.Rem(r, x, y); err != nil {
		return nil, nil, fmt.Errorf("%w: wide division: %v", ErrRange, err)
	}
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		one := apd.New(1, 0)
		deltaCtx.Sub(q, q, one)
		deltaCtx.Add(r, r, y)
	}
	return q, r, nil
}

// deltaFromMicrosDec decomposes an exact microsecond count into the
// canonical triple.
func deltaFromMicrosDec(total *apd.Decimal) (Delta, error) {
	secs, us, err := divmodDec(total, apd.New(usPerSecond, 0))
	if err != nil {
		return Delta{}, err
	}
	days, rsecs, err := divmodDec(secs, apd.New(secondsPerDay, 0))
	if err != nil {
		return Delta{}, err
	}
	dayCount, err := days.Int64()
	if err != nil {
		return Delta{}, rangeErr("delta.days", 0, -MaxDeltaDays, MaxDeltaDays)
	}
	secCount, _ := rsecs.Int64()
	usCount, _ := us.Int64()
	return deltaFromNormalized(dayCount, secCount, usCount)
}

// Add returns d + other.
func (d Delta) Add(other Delta) (Delta, error) {
	return NewDelta(
		int64(d.days)+int64(other.days),
		int64(d.seconds)+int64(other.seconds),
		int64(d.microseconds)+int64(other.microseconds),
	)
}

// Sub returns d - other.
func (d Delta) Sub(other Delta) (Delta, error) {
	return NewDelta(
		int64(d.days)-int64(other.days),
		int64(d.seconds)-int64(other.seconds),
		int64(d.microseconds)-int64(other.microseconds),
	)
}

// Neg returns -d. Negating the three components and renormalizing is
// equivalent to negating the total microsecond count.
func (d Delta) Neg() (Delta, error) {
	return NewDelta(-int64(d.days), -int64(d.seconds), -int64(d.microseconds))
}

// Abs returns the magnitude of d.
func (d Delta) Abs() (Delta, error) {
	if d.days < 0 {
		return d.Neg()
	}
	return d, nil
}

// MulInt returns d scaled by n.
func (d Delta) MulInt(n int64) (Delta, error) {
	total := d.microsDec()
	if _, err := deltaCtx.Mul(total, total, apd.New(n, 0)); err != nil {
		return Delta{}, fmt.Errorf("%w: delta scaling: %v", ErrRange, err)
	}
	return deltaFromMicrosDec(total)
}

// DivInt returns d divided by n with floor semantics on the total
// microsecond count. Dividing by zero is a domain error.
func (d Delta) DivInt(n int64) (Delta, error) {
	if n == 0 {
		return Delta{}, domainErr("delta division")
	}
	q, _, err := divmodDec(d.microsDec(), apd.New(n, 0))
	if err != nil {
		return Delta{}, err
	}
	return deltaFromMicrosDec(q)
}

// Div returns the floored integer quotient of the two total microsecond
// counts. Dividing by a zero delta is a domain error.
func (d Delta) Div(other Delta) (int64, error) {
	if other.IsZero() {
		return 0, domainErr("delta division")
	}
	q, _, err := divmodDec(d.microsDec(), other.microsDec())
	if err != nil {
		return 0, err
	}
	n, err := q.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: delta quotient exceeds int64", ErrRange)
	}
	return n, nil
}

// Mod returns the remainder of d divided by other with floor semantics:
// the result has the sign of other, or is zero. Together with Div it
// satisfies d == q*other + r in total microseconds.
func (d Delta) Mod(other Delta) (Delta, error) {
	if other.IsZero() {
		return Delta{}, domainErr("delta modulo")
	}
	_, r, err := divmodDec(d.microsDec(), other.microsDec())
	if err != nil {
		return Delta{}, err
	}
	return deltaFromMicrosDec(r)
}

// Cmp compares the canonical triples lexicographically, which on
// normalized values is identical to comparing total microsecond counts.
// It returns -1, 0 or +1.
func (d Delta) Cmp(other Delta) int {
	if c := compareInts(int64(d.days), int64(other.days)); c != 0 {
		return c
	}
	if c := compareInts(int64(d.seconds), int64(other.seconds)); c != 0 {
		return c
	}
	return compareInts(int64(d.microseconds), int64(other.microseconds))
}

// Equal reports whether the two deltas denote the same duration.
func (d Delta) Equal(other Delta) bool { return d.Cmp(other) == 0 }

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// TotalSeconds returns the duration in whole seconds, floor-dividing the
// total microsecond count and discarding the sub-second remainder.
func (d Delta) TotalSeconds() int64 {
	// With canonical components microseconds is non-negative, so the
	// floored second count is exactly days*86400 + seconds.
	return int64(d.days)*secondsPerDay + int64(d.seconds)
}

// TotalMilliseconds returns the duration in whole milliseconds with floor
// semantics.
func (d Delta) TotalMilliseconds() int64 {
	return d.TotalSeconds()*1000 + int64(d.microseconds)/1000
}

// TotalMicroseconds returns the exact total microsecond count. Day counts
// beyond about 106.7 million days exceed int64 microseconds; such totals
// report a range error rather than wrapping.
func (d Delta) TotalMicroseconds() (int64, error) {
	n, err := d.microsDec().Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: total microseconds exceeds int64", ErrRange)
	}
	return n, nil
}

// DecimalSeconds returns the exact duration in seconds as a decimal,
// including the fractional microsecond part.
func (d Delta) DecimalSeconds() *apd.Decimal {
	total := d.microsDec()
	total.Exponent -= 6
	return total
}

// FromDecimalSeconds builds a Delta from a decimal second count, rounding
// to the nearest whole microsecond.
func FromDecimalSeconds(seconds *apd.Decimal) (Delta, error) {
	total := new(apd.Decimal).Set(seconds)
	total.Exponent += 6
	if _, err := deltaCtx.RoundToIntegralValue(total, total); err != nil {
		return Delta{}, fmt.Errorf("%w: decimal seconds: %v", ErrRange, err)
	}
	return deltaFromMicrosDec(total)
}

// Duration converts d to a time.Duration, or reports a range error when
// the value exceeds the roughly ±292 year span a Duration can hold.
func (d Delta) Duration() (time.Duration, error) {
	us, err := d.TotalMicroseconds()
	if err != nil {
		return 0, err
	}
	ns, err := mulCheck(us, 1000)
	if err != nil {
		return 0, fmt.Errorf("%w: delta exceeds time.Duration range", ErrRange)
	}
	return time.Duration(ns), nil
}

// String renders the delta in the [-]D day[s], H:MM:SS[.ffffff] shape,
// with the day part omitted when zero.
func (d Delta) String() string {
	s := int64(d.seconds)
	m, s := divmod(s, 60)
	h, m := divmod(m, 60)
	hms := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	if d.microseconds != 0 {
		hms += fmt.Sprintf(".%06d", d.microseconds)
	}
	if d.days == 0 {
		return hms
	}
	plural := "s"
	if d.days == 1 || d.days == -1 {
		plural = ""
	}
	return fmt.Sprintf("%d day%s, %s", d.days, plural, hms)
}
