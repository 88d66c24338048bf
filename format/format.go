package format

import (
	"fmt"

	"github.com/sporadisk/mylog/timevalue"
)

const minutesPerDay = 24 * 60

// Ratio is d as a fraction of total, zero when the total is empty.
func Ratio(d, total timevalue.TimeValue) float64 {
	t := clampedMinutes(total)
	if t == 0 {
		return 0
	}
	return float64(clampedMinutes(d)) / float64(t)
}

func Percent(d, total timevalue.TimeValue) float64 {
	return 100 * Ratio(d, total)
}

// Duration renders a duration with its share of the total span, padded
// so rows line up in a table. Durations of a day or more gain a day
// column; multi-day runs append a per-day average.
func Duration(d, total timevalue.TimeValue, days int) string {
	m := clampedMinutes(d)
	dayPart := m / minutesPerDay
	hours := (m % minutesPerDay) / 60
	mins := m % 60

	var s string
	if dayPart > 0 {
		s = fmt.Sprintf("%3d:%02d:%02d (%5.1f %%)", dayPart, hours, mins, Percent(d, total))
	} else {
		s = fmt.Sprintf("    %2d:%02d (%5.1f %%)", hours, mins, Percent(d, total))
	}

	if days > 1 {
		per := m / days
		s += fmt.Sprintf(" (%d:%02d per day)", per/60, per%60)
	}

	return s
}

// Clock renders a boundary time for display, absence marker included.
func Clock(t timevalue.TimeValue) string {
	return t.String()
}

func clampedMinutes(t timevalue.TimeValue) int {
	m := t.Minutes()
	if m < 0 {
		return 0
	}
	return m
}
