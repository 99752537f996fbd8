// Package datetime provides civil calendar and clock value types on the
// proleptic Gregorian calendar: Date, Time, DateTime and the signed
// duration type Delta.
//
// All values are immutable; arithmetic returns a new canonical value.
// Dates cover years 1 through 9999 and are interchangeable with a linear
// day ordinal where 0001-01-01 is day 1. Deltas are kept in a canonical
// (days, seconds, microseconds) triple with 0 <= seconds < 86400 and
// 0 <= microseconds < 1000000; the sign of the whole value is carried by
// the day component.
//
// Out-of-range constructor arguments, arithmetic that would leave the
// supported range, and division by zero return errors wrapping ErrRange,
// ErrDomain or ErrParse. No operation silently wraps or truncates.
package datetime

//go:generate go run github.com/clockforge/datetime-go/internal/cmd/generate -out names_gen.go
