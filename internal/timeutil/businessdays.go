// Package timeutil provides business-day arithmetic for escalation delay
// windows. A business day is a calendar day excluding Saturday and Sunday;
// statutory holidays are not considered.
package timeutil

import "time"

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// AddBusinessDays advances t by the given number of business days, skipping
// weekends. Negative counts move backwards. The time of day is preserved.
func AddBusinessDays(t time.Time, days int) time.Time {
	step := 1
	if days < 0 {
		step = -1
		days = -days
	}

	result := t
	for remaining := days; remaining > 0; {
		result = result.AddDate(0, 0, step)
		if IsBusinessDay(result) {
			remaining--
		}
	}
	return result
}

// BusinessDaysBetween counts the business days elapsed from one instant to a
// later one, comparing calendar dates in UTC. Returns 0 when to precedes from.
func BusinessDaysBetween(from, to time.Time) int {
	fromDate := truncateToDate(from.UTC())
	toDate := truncateToDate(to.UTC())
	if !toDate.After(fromDate) {
		return 0
	}

	count := 0
	for d := fromDate.AddDate(0, 0, 1); !d.After(toDate); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
