package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockforge/datetime-go/datetime"
)

func TestStrptime(t *testing.T) {
	dt, err := datetime.Strptime("2021/08/31 15:59:55.123456", "%Y/%m/%d %H:%M:%S.%f")
	require.NoError(t, err)
	want := mustDateTime(t, 2021, 8, 31, 15, 59, 55, 123456)
	assert.True(t, dt.Equal(want), "got %v, want %v", dt, want)

	dt, err = datetime.Strptime("20210831", "%Y%m%d")
	require.NoError(t, err)
	assert.True(t, dt.Equal(mustDateTime(t, 2021, 8, 31, 0, 0, 0, 0)))

	dt, err = datetime.Strptime("100% 2021-08-31", "100%% %Y-%m-%d")
	require.NoError(t, err)
	assert.Equal(t, 2021, dt.Year())
}

func TestStrptimeErrors(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		layout string
		kind   error
	}{
		{"separator mismatch", "2021-08-31", "%Y/%m/%d", datetime.ErrParse},
		{"short digits", "2021/8/31", "%Y/%m/%d", datetime.ErrParse},
		{"trailing garbage", "2021/08/31x", "%Y/%m/%d", datetime.ErrParse},
		{"unknown directive", "2021", "%G", datetime.ErrParse},
		{"trailing percent", "2021", "2021%", datetime.ErrParse},
		{"non-digit microseconds", "2021/08/31 00:00:00.12345x", "%Y/%m/%d %H:%M:%S.%f", datetime.ErrParse},
		// Fields left unset by the layout still go through full
		// validation, so a missing month is a range error.
		{"missing month", "15:59", "%H:%M", datetime.ErrRange},
		{"out of range day", "2021/02/29", "%Y/%m/%d", datetime.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datetime.Strptime(tt.value, tt.layout)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestDateFromISOFormat(t *testing.T) {
	d, err := datetime.DateFromISOFormat("2021-08-31")
	require.NoError(t, err)
	assert.True(t, d.Equal(mustDate(t, 2021, 8, 31)))

	for _, bad := range []string{
		"2021-8-31",   // wrong digit count
		"2021/08/31",  // wrong separator
		"2021-08-311", // too long
		"2021-08",     // too short
		"20x1-08-31",  // non-digit
	} {
		_, err := datetime.DateFromISOFormat(bad)
		assert.ErrorIs(t, err, datetime.ErrParse, "input %q", bad)
	}

	// Well-formed but impossible dates are range errors, not parse
	// errors.
	_, err = datetime.DateFromISOFormat("2021-02-29")
	assert.ErrorIs(t, err, datetime.ErrRange)
}

func TestTimeFromISOFormat(t *testing.T) {
	tests := []struct {
		in   string
		want [4]int
	}{
		{"15", [4]int{15, 0, 0, 0}},
		{"15:59", [4]int{15, 59, 0, 0}},
		{"15:59:55", [4]int{15, 59, 55, 0}},
		{"15:59:55.123", [4]int{15, 59, 55, 123000}},
		{"15:59:55.123456", [4]int{15, 59, 55, 123456}},
		// Zone designators are validated and discarded.
		{"15:59:55+08:00", [4]int{15, 59, 55, 0}},
		{"15:59:55.123456-05:30", [4]int{15, 59, 55, 123456}},
	}
	for _, tt := range tests {
		tm, err := datetime.TimeFromISOFormat(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		got := [4]int{tm.Hour(), tm.Minute(), tm.Second(), tm.Microsecond()}
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	for _, bad := range []string{
		"",
		"5",
		"15:",
		"15:59:55.",
		"15:59:55.12",      // fraction must be 3 or 6 digits
		"15:59:55.1234567", // too many fraction digits
		"15.59",            // fraction must follow a complete component
		"15:59:55+8:00",    // malformed zone
		"15:59:55+08:0",
	} {
		_, err := datetime.TimeFromISOFormat(bad)
		assert.ErrorIs(t, err, datetime.ErrParse, "input %q", bad)
	}

	_, err := datetime.TimeFromISOFormat("24:00")
	assert.ErrorIs(t, err, datetime.ErrRange)
}

func TestDateTimeFromISOFormat(t *testing.T) {
	want := mustDateTime(t, 2021, 8, 31, 15, 59, 55, 123456)

	for _, in := range []string{
		"2021-08-31T15:59:55.123456",
		"2021-08-31 15:59:55.123456",
	} {
		dt, err := datetime.DateTimeFromISOFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, dt.Equal(want), "input %q: got %v", in, dt)
	}

	for _, bad := range []string{
		"2021-08-31",
		"2021-08-31X15:59:55",
		"2021-08-3115:59:55",
		"2021-08-31T",
	} {
		_, err := datetime.DateTimeFromISOFormat(bad)
		assert.ErrorIs(t, err, datetime.ErrParse, "input %q", bad)
	}
}
