package datetime

import (
	"errors"
	"fmt"
)

// The package reports every failure through one of three sentinel kinds.
// Callers match with errors.Is; messages carry the offending field name
// and value.
var (
	// ErrRange reports a constructor field outside its declared bound or
	// an arithmetic result outside the supported calendar range.
	ErrRange = errors.New("datetime: value out of range")

	// ErrDomain reports division or modulo by a zero delta or zero scalar.
	ErrDomain = errors.New("datetime: domain error")

	// ErrParse reports a malformed interchange string or format layout.
	ErrParse = errors.New("datetime: parse error")
)

func rangeErr(field string, value, lo, hi int64) error {
	return fmt.Errorf("%w: %s=%d valid range [%d,%d]", ErrRange, field, value, lo, hi)
}

func domainErr(op string) error {
	return fmt.Errorf("%w: %s by zero", ErrDomain, op)
}

func parseErr(what, input string) error {
	return fmt.Errorf("%w: invalid %s: %q", ErrParse, what, input)
}
