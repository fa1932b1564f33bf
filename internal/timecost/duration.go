package timecost

import (
	"fmt"
	"math"
	"strings"
)

// Duration is a days/hours/minutes breakdown of a fractional hour count.
// Hours is always in [0,23] and Minutes in [0,59].
type Duration struct {
	Days    int
	Hours   int
	Minutes int
}

// FromHours breaks h down into whole days, hours and rounded minutes.
// A minute count that rounds up to 60 is carried into the hour, and a
// resulting 24th hour into the day.
func FromHours(h float64) Duration {
	days := math.Floor(h / 24)
	rem := math.Mod(h, 24)
	whole := math.Floor(rem)

	d := Duration{
		Days:    int(days),
		Hours:   int(whole),
		Minutes: int(math.Round((rem - whole) * 60)),
	}

	if d.Minutes == 60 {
		d.Minutes = 0
		d.Hours++
	}
	if d.Hours == 24 {
		d.Hours = 0
		d.Days++
	}

	return d
}

// TotalHours reassembles the breakdown into a fractional hour count.
func (d Duration) TotalHours() float64 {
	return float64(d.Days)*24 + float64(d.Hours) + float64(d.Minutes)/60
}

// String renders e.g. "1 day, 2 hours, 5 minutes". Days and minutes are
// omitted when zero; hours are always present.
func (d Duration) String() string {
	var b strings.Builder

	if d.Days > 0 {
		b.WriteString(plural(d.Days, "day"))
		b.WriteString(", ")
	}

	b.WriteString(plural(d.Hours, "hour"))

	if d.Minutes > 0 {
		b.WriteString(", ")
		b.WriteString(plural(d.Minutes, "minute"))
	}

	return b.String()
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// RoundTenth rounds h to one decimal place for display.
func RoundTenth(h float64) float64 {
	return math.Round(h*10) / 10
}

// WorkdayHours is the length of the working day used by Workdays.
const WorkdayHours = 8

// Workdays expresses h as 8-hour working days, rounded to two decimals.
func Workdays(h float64) float64 {
	return math.Round(h/WorkdayHours*100) / 100
}
