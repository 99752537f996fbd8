package datetime_test

import (
	"errors"
	"testing"

	"github.com/clockforge/datetime-go/datetime"
)

func mustDate(t *testing.T, year, month, day int) datetime.Date {
	t.Helper()
	d, err := datetime.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d): %v", year, month, day, err)
	}
	return d
}

func TestNewDateValidation(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		ok               bool
	}{
		{"ordinary day", 2021, 6, 15, true},
		{"leap february 29", 2020, 2, 29, true},
		{"non-leap february 29", 2021, 2, 29, false},
		{"month zero", 2021, 0, 1, false},
		{"month thirteen", 2021, 13, 1, false},
		{"day zero", 2021, 1, 0, false},
		{"day 32", 2021, 1, 32, false},
		{"year zero", 0, 1, 1, false},
		{"year 10000", 10000, 1, 1, false},
		{"calendar bounds", 9999, 12, 31, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datetime.NewDate(tt.year, tt.month, tt.day)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, datetime.ErrRange) {
				t.Fatalf("want ErrRange, got %v", err)
			}
		})
	}
}

func TestDateAddSubDelta(t *testing.T) {
	one, err := datetime.Days(1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		start datetime.Date
		delta datetime.Delta
		want  datetime.Date
	}{
		{"simple add", mustDate(t, 2021, 6, 15), one, mustDate(t, 2021, 6, 16)},
		{"non-leap february rollover", mustDate(t, 2021, 2, 28), one, mustDate(t, 2021, 3, 1)},
		{"leap february stays", mustDate(t, 2020, 2, 28), one, mustDate(t, 2020, 2, 29)},
		{"year rollover", mustDate(t, 2021, 12, 31), one, mustDate(t, 2022, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddDelta(tt.delta)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("%v + %v = %v, want %v", tt.start, tt.delta, got, tt.want)
			}

			back, err := got.SubDelta(tt.delta)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(tt.start) {
				t.Errorf("(%v + %v) - %v = %v, want %v", tt.start, tt.delta, tt.delta, back, tt.start)
			}
		})
	}
}

func TestDateAddDeltaIgnoresTimeComponents(t *testing.T) {
	// Date has day resolution; delta seconds and microseconds do not
	// participate.
	almostDay, err := datetime.NewDelta(0, 86399, 999999)
	if err != nil {
		t.Fatal(err)
	}
	d := mustDate(t, 2021, 6, 15)
	got, err := d.AddDelta(almostDay)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(d) {
		t.Errorf("adding sub-day delta moved the date: %v", got)
	}
}

func TestDateSub(t *testing.T) {
	tests := []struct {
		a, b datetime.Date
		days int
	}{
		{mustDate(t, 2021, 1, 1), mustDate(t, 2020, 1, 1), 366}, // 2020 is a leap year
		{mustDate(t, 2020, 1, 1), mustDate(t, 2021, 1, 1), -366},
		{mustDate(t, 2021, 3, 1), mustDate(t, 2021, 2, 28), 1},
		{mustDate(t, 2021, 6, 15), mustDate(t, 2021, 6, 15), 0},
	}
	for _, tt := range tests {
		got := tt.a.Sub(tt.b)
		if got.Days() != tt.days || got.Seconds() != 0 || got.Microseconds() != 0 {
			t.Errorf("%v - %v = %v, want %d days exactly", tt.a, tt.b, got, tt.days)
		}
	}
}

func TestDateArithmeticRangeErrors(t *testing.T) {
	one, err := datetime.Days(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := datetime.MaxDate().AddDelta(one); !errors.Is(err, datetime.ErrRange) {
		t.Errorf("MaxDate + 1d: want ErrRange, got %v", err)
	}
	if _, err := datetime.MinDate().SubDelta(one); !errors.Is(err, datetime.ErrRange) {
		t.Errorf("MinDate - 1d: want ErrRange, got %v", err)
	}
}

func TestDateFromOrdinalBounds(t *testing.T) {
	if _, err := datetime.DateFromOrdinal(0); !errors.Is(err, datetime.ErrRange) {
		t.Errorf("ordinal 0: want ErrRange, got %v", err)
	}
	if _, err := datetime.DateFromOrdinal(3652060); !errors.Is(err, datetime.ErrRange) {
		t.Errorf("ordinal past max: want ErrRange, got %v", err)
	}
	d, err := datetime.DateFromOrdinal(1)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(datetime.MinDate()) {
		t.Errorf("ordinal 1 = %v", d)
	}
}

func TestDateCmp(t *testing.T) {
	ordered := []datetime.Date{
		datetime.MinDate(),
		mustDate(t, 2020, 12, 31),
		mustDate(t, 2021, 1, 1),
		mustDate(t, 2021, 1, 2),
		mustDate(t, 2021, 2, 1),
		datetime.MaxDate(),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := ordered[i].Cmp(ordered[j]); got != want {
				t.Errorf("Cmp(%v, %v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}
