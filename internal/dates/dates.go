package dates

import (
	"fmt"
	"time"
)

// Day is a calendar day with no time-of-day or timezone component. Once a
// value has been normalized into a Day, all comparisons and arithmetic happen
// in whole-day units on local calendar fields, so daylight-saving shifts and
// offset artifacts in the input can never move it to a neighbouring day.
type Day struct {
	t time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize parses a date-like string and truncates it to a calendar day.
// The calendar fields are taken as written, so "2024-01-02" and
// "2024-01-02T23:59:00+10:00" normalize to the same Day. Returns ok=false
// for empty or unparseable input.
func Normalize(value string) (Day, bool) {
	if value == "" {
		return Day{}, false
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		year, month, day := parsed.Date()
		return Day{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}, true
	}
	return Day{}, false
}

// FromTime truncates a time to its local calendar day.
func FromTime(t time.Time) Day {
	year, month, day := t.Date()
	return Day{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// Today returns the current calendar day in local time.
func Today() Day {
	return FromTime(time.Now())
}

// AddDays returns the day n calendar days later (earlier for negative n),
// crossing month and year boundaries correctly.
func (d Day) AddDays(n int) Day {
	return FromTime(d.t.AddDate(0, 0, n))
}

func (d Day) Before(other Day) bool {
	return d.epochDays() < other.epochDays()
}

func (d Day) Equal(other Day) bool {
	return d.epochDays() == other.epochDays()
}

// String renders the day as YYYY-MM-DD from its calendar fields. No UTC
// conversion happens here, so a day never shifts near midnight.
func (d Day) String() string {
	year, month, day := d.t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthKey returns the YYYY-MM bucket the day falls in.
func (d Day) MonthKey() string {
	year, month, _ := d.t.Date()
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// Diff returns the whole-day count from earlier to later. It is computed
// from calendar fields rather than wall-clock deltas, so a DST transition
// inside the range cannot skew the count.
func Diff(later, earlier Day) int {
	return later.epochDays() - earlier.epochDays()
}

// epochDays maps the day's calendar fields onto a UTC day number, giving
// exact whole-day arithmetic regardless of the local zone.
func (d Day) epochDays() int {
	year, month, day := d.t.Date()
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// MonthKey buckets a date string by year and month for "this month"
// comparisons. Unparseable input yields the empty bucket, which never
// matches a real month.
func MonthKey(value string) string {
	day, ok := Normalize(value)
	if !ok {
		return ""
	}
	return day.MonthKey()
}
