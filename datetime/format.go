package datetime

import (
	"fmt"
	"strings"
)

// ISOFormat renders the date as YYYY-MM-DD.
func (d Date) ISOFormat() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// String is the ISO form.
func (d Date) String() string { return d.ISOFormat() }

// Ctime renders the date in ctime shape with a midnight clock, for
// example "Tue Aug 31 00:00:00 2021".
func (d Date) Ctime() string {
	return formatCtime(d.Year(), d.Month(), d.Day(), 0, 0, 0)
}

// Format renders the date through the strftime layout language; the clock
// directives see midnight.
func (d Date) Format(layout string) (string, error) {
	return Combine(d, Time{}).Format(layout)
}

// ISOFormat renders the time as HH:MM:SS, with a .ffffff suffix when the
// microsecond component is non-zero.
func (t Time) ISOFormat() string {
	if t.microsecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour(), t.Minute(), t.Second(), t.Microsecond())
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// String is the ISO form.
func (t Time) String() string { return t.ISOFormat() }

// Format renders the time through the strftime layout language; the date
// directives see the reference date 1900-01-01.
func (t Time) Format(layout string) (string, error) {
	return Combine(dateUnchecked(1900, 1, 1), t).Format(layout)
}

// ISOFormat renders the instant as YYYY-MM-DDTHH:MM:SS, with a .ffffff
// suffix when the microsecond component is non-zero.
func (dt DateTime) ISOFormat() string {
	return dt.date.ISOFormat() + "T" + dt.time.ISOFormat()
}

// String is the ISO form.
func (dt DateTime) String() string { return dt.ISOFormat() }

// Ctime renders the instant in ctime shape, for example
// "Tue Aug 31 15:59:55 2021".
func (dt DateTime) Ctime() string {
	return formatCtime(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second())
}

func formatCtime(year, month, day, hour, minute, second int) string {
	wd := weekdayOf(year, month, day)
	return fmt.Sprintf("%s %s %2d %02d:%02d:%02d %04d",
		dayNames[wd], monthNames[month-1], day, hour, minute, second, year)
}

// Format renders the instant through a strftime-style layout.
//
// Supported directives: %a %A %w %d %b %B %m %y %Y %H %I %p %M %S %f
// %j %U %W %c %x %X %%. %z and %Z are accepted and emit nothing, since
// the type carries no zone. Any other directive is a format error.
func (dt DateTime) Format(layout string) (string, error) {
	var sb strings.Builder
	i := 0
	for i < len(layout) {
		if layout[i] != '%' {
			sb.WriteByte(layout[i])
			i++
			continue
		}
		i++
		if i == len(layout) {
			return "", fmt.Errorf("%w: trailing %% in layout %q", ErrParse, layout)
		}
		switch layout[i] {
		case 'a':
			sb.WriteString(dayNames[dt.Weekday()])
		case 'A':
			sb.WriteString(dayFullNames[dt.Weekday()])
		case 'w':
			// Decimal weekday with Sunday==0.
			fmt.Fprintf(&sb, "%d", (dt.Weekday()+1)%7)
		case 'd':
			fmt.Fprintf(&sb, "%02d", dt.Day())
		case 'b':
			sb.WriteString(monthNames[dt.Month()-1])
		case 'B':
			sb.WriteString(monthFullNames[dt.Month()-1])
		case 'm':
			fmt.Fprintf(&sb, "%02d", dt.Month())
		case 'y':
			fmt.Fprintf(&sb, "%02d", dt.Year()%100)
		case 'Y':
			fmt.Fprintf(&sb, "%04d", dt.Year())
		case 'H':
			fmt.Fprintf(&sb, "%02d", dt.Hour())
		case 'I':
			if h := dt.Hour(); h == 0 || h == 12 {
				sb.WriteString("12")
			} else {
				fmt.Fprintf(&sb, "%02d", dt.Hour()%12)
			}
		case 'p':
			if dt.Hour() < 12 {
				sb.WriteString("AM")
			} else {
				sb.WriteString("PM")
			}
		case 'M':
			fmt.Fprintf(&sb, "%02d", dt.Minute())
		case 'S':
			fmt.Fprintf(&sb, "%02d", dt.Second())
		case 'f':
			fmt.Fprintf(&sb, "%06d", dt.Microsecond())
		case 'z', 'Z':
			// No zone attached; nothing to emit.
		case 'j':
			fmt.Fprintf(&sb, "%03d", dt.dayOfYear())
		case 'U':
			fmt.Fprintf(&sb, "%02d", dt.weekNumber(6))
		case 'W':
			fmt.Fprintf(&sb, "%02d", dt.weekNumber(0))
		case 'c':
			sb.WriteString(dt.Ctime())
		case 'x':
			fmt.Fprintf(&sb, "%02d/%02d/%02d", dt.Month(), dt.Day(), dt.Year()%100)
		case 'X':
			fmt.Fprintf(&sb, "%02d:%02d:%02d", dt.Hour(), dt.Minute(), dt.Second())
		case '%':
			sb.WriteByte('%')
		default:
			return "", fmt.Errorf("%w: unknown directive %%%c in layout %q", ErrParse, layout[i], layout)
		}
		i++
	}
	return sb.String(), nil
}

func (dt DateTime) dayOfYear() int {
	return daysBeforeMonth(dt.Year(), dt.Month()) + dt.Day()
}

// weekNumber implements %U (firstWeekday 6, weeks start Sunday) and %W
// (firstWeekday 0, weeks start Monday). Days before the year's first such
// weekday fall in week 0.
func (dt DateTime) weekNumber(firstWeekday int) int {
	jan1 := weekdayOf(dt.Year(), 1, 1)
	firstStart := 1
	if jan1 != firstWeekday {
		firstStart += (firstWeekday - jan1 + 7) % 7
	}
	dayOfYear := dt.dayOfYear()
	if dayOfYear < firstStart {
		return 0
	}
	return 1 + (dayOfYear-firstStart)/7
}
