package datetime

// Mixed-radix carry/borrow machinery. All helpers use floored division so
// that negative intermediates (for example hour differences during
// DateTime subtraction) carry correctly; truncating division would not.

// divmod returns the floored quotient and the always-non-negative
// remainder of x/y. y must be > 0, which keeps the overflow case
// (divmod(math.MinInt64, -1)) impossible.
func divmod(x, y int64) (q, r int64) {
	q = x / y
	r = x - q*y
	if r < 0 {
		q--
		r += y
	}
	return q, r
}

// addCheck adds two int64 values, reporting overflow instead of wrapping.
func addCheck(a, b int64) (int64, error) {
	sum := a + b
	// Overflow iff the result differs in sign from both inputs.
	if (sum^a) < 0 && (sum^b) < 0 {
		return 0, rangeErr("sum", sum, minInt64, maxInt64)
	}
	return sum, nil
}

// mulCheck multiplies two int64 values, reporting overflow instead of
// wrapping.
func mulCheck(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	prod := a * b
	if prod/b != a {
		return 0, rangeErr("product", prod, minInt64, maxInt64)
	}
	return prod, nil
}

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)

// normalizePair performs one step of a mixed-radix conversion: a "hi" unit
// equals factor "lo" units. If *lo is outside [0, factor) the excess is
// carried into *hi. factor must be > 0.
func normalizePair(hi, lo *int64, factor int64) error {
	if *lo < 0 || *lo >= factor {
		numHi, rem := divmod(*lo, factor)
		newHi, err := addCheck(*hi, numHi)
		if err != nil {
			return err
		}
		*hi = newHi
		*lo = rem
	}
	return nil
}

// normalizeDSUS folds days/seconds/microseconds so that
// 0 <= *s < 86400 and 0 <= *us < 1000000. The caller is responsible for
// checking the resulting day count against the delta range.
func normalizeDSUS(d, s, us *int64) error {
	if err := normalizePair(s, us, usPerSecond); err != nil {
		return err
	}
	return normalizePair(d, s, secondsPerDay)
}

// normalizeYMD folds an out-of-range day back into valid calendar bounds.
// The month is always in [1,12] on entry: date arithmetic only ever
// perturbs the day component.
//
// A value one day out of range is adjusted in O(1); larger offsets fall
// back to a full ordinal round-trip. The cheap path covers the common
// add-a-few-days case without paying for two ordinal conversions.
func normalizeYMD(y, m, d *int64) error {
	dim := int64(DaysInMonth(int(*y), int(*m)))
	if *d < 1 || *d > dim {
		switch {
		case *d == 0:
			*m--
			if *m > 0 {
				*d = int64(DaysInMonth(int(*y), int(*m)))
			} else {
				*y--
				*m = 12
				*d = 31
			}
		case *d == dim+1:
			*m++
			*d = 1
			if *m > 12 {
				*m = 1
				*y++
			}
		default:
			ordinal := int64(ymdToOrdinal(int(*y), int(*m), 1)) + *d - 1
			if ordinal < 1 || ordinal > maxOrdinal {
				return rangeErr("ordinal", ordinal, 1, maxOrdinal)
			}
			yy, mm, dd := ordinalToYMD(int(ordinal))
			*y, *m, *d = int64(yy), int64(mm), int64(dd)
			return nil
		}
	}
	if *y < MinYear || *y > MaxYear {
		return rangeErr("year", *y, MinYear, MaxYear)
	}
	return nil
}

// normalizeDateTime forces a full set of datetime fields into range,
// cascading carries from microseconds up through the day and then
// deferring the month/year carry to normalizeYMD.
func normalizeDateTime(y, mo, d, h, mi, s, us *int64) error {
	if err := normalizePair(s, us, usPerSecond); err != nil {
		return err
	}
	if err := normalizePair(mi, s, 60); err != nil {
		return err
	}
	if err := normalizePair(h, mi, 60); err != nil {
		return err
	}
	if err := normalizePair(d, h, 24); err != nil {
		return err
	}
	return normalizeYMD(y, mo, d)
}
