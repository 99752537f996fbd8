package datetime_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/clockforge/datetime-go/datetime"
)

func TestISOFormat(t *testing.T) {
	d := mustDate(t, 2021, 8, 31)
	if got := d.ISOFormat(); got != "2021-08-31" {
		t.Errorf("date ISOFormat = %q", got)
	}

	tm, err := datetime.NewTime(15, 59, 55, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := tm.ISOFormat(); got != "15:59:55" {
		t.Errorf("time ISOFormat = %q", got)
	}

	tmUS, err := datetime.NewTime(15, 59, 55, 123456)
	if err != nil {
		t.Fatal(err)
	}
	if got := tmUS.ISOFormat(); got != "15:59:55.123456" {
		t.Errorf("time ISOFormat with fraction = %q", got)
	}

	dt := mustDateTime(t, 2021, 8, 31, 15, 59, 55, 123456)
	if got := dt.ISOFormat(); got != "2021-08-31T15:59:55.123456" {
		t.Errorf("datetime ISOFormat = %q", got)
	}
	if got := mustDateTime(t, 1, 1, 1, 0, 0, 0, 0).ISOFormat(); got != "0001-01-01T00:00:00" {
		t.Errorf("min datetime ISOFormat = %q", got)
	}
}

func TestCtime(t *testing.T) {
	dt := mustDateTime(t, 2021, 8, 31, 15, 59, 55, 0)
	if got := dt.Ctime(); got != "Tue Aug 31 15:59:55 2021" {
		t.Errorf("Ctime = %q", got)
	}
	// Single-digit days are space padded.
	d2 := mustDateTime(t, 2021, 9, 1, 0, 0, 0, 0)
	if got := d2.Ctime(); got != "Wed Sep  1 00:00:00 2021" {
		t.Errorf("Ctime = %q", got)
	}
}

// TestFormatGolden runs the full directive battery against a fixed
// instant and compares the rendered block with the checked-in golden
// file. Regenerate with -update after deliberate changes.
func TestFormatGolden(t *testing.T) {
	dt := mustDateTime(t, 2021, 8, 31, 15, 59, 55, 123456)

	layouts := []string{
		"%a", "%A", "%w", "%d", "%b", "%B", "%m", "%y", "%Y",
		"%H", "%I", "%p", "%M", "%S", "%f", "%j", "%U", "%W",
		"%x", "%X", "%c",
		"%Y-%m-%d %H:%M:%S.%f",
		"100%%",
	}

	var sb strings.Builder
	for _, layout := range layouts {
		out, err := dt.Format(layout)
		if err != nil {
			t.Fatalf("Format(%q): %v", layout, err)
		}
		sb.WriteString(layout)
		sb.WriteByte('|')
		sb.WriteString(out)
		sb.WriteByte('\n')
	}

	g := goldie.New(t)
	g.Assert(t, "strftime", []byte(sb.String()))
}

func TestFormatTwelveHourClock(t *testing.T) {
	tests := []struct {
		hour string
		want string
	}{
		{"00", "12 AM"},
		{"01", "01 AM"},
		{"11", "11 AM"},
		{"12", "12 PM"},
		{"13", "01 PM"},
		{"23", "11 PM"},
	}
	for _, tt := range tests {
		h := int(tt.hour[0]-'0')*10 + int(tt.hour[1]-'0')
		dt := mustDateTime(t, 2021, 1, 1, h, 0, 0, 0)
		got, err := dt.Format("%I %p")
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("hour %s: got %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	dt := mustDateTime(t, 2021, 8, 31, 15, 59, 55, 0)
	if _, err := dt.Format("%Q"); !errors.Is(err, datetime.ErrParse) {
		t.Errorf("unknown directive: want ErrParse, got %v", err)
	}
	if _, err := dt.Format("abc%"); !errors.Is(err, datetime.ErrParse) {
		t.Errorf("trailing percent: want ErrParse, got %v", err)
	}
}

func TestTimeFormatUsesReferenceDate(t *testing.T) {
	tm, err := datetime.NewTime(15, 4, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := tm.Format("%H:%M:%S %Y")
	if err != nil {
		t.Fatal(err)
	}
	if got != "15:04:05 1900" {
		t.Errorf("got %q", got)
	}
}
