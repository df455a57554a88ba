package dynamic

import (
	"strconv"
	"time"
)

func (r *Registry) registerTime() {
	r.Register("timestamp", CategoryTime,
		"Current Unix timestamp in seconds", func() string {
			return strconv.FormatInt(time.Now().Unix(), 10)
		})
	r.Register("timestampMs", CategoryTime,
		"Current Unix timestamp in milliseconds", func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		})
	r.Register("isoTimestamp", CategoryTime,
		"Current time in ISO 8601 format, UTC", func() string {
			return time.Now().UTC().Format(time.RFC3339)
		})
	r.Register("randomDatePast", CategoryTime,
		"ISO date up to a year in the past", func() string {
			days := randBetween(1, 365)
			return time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
		})
	r.Register("randomDateFuture", CategoryTime,
		"ISO date up to a year in the future", func() string {
			days := randBetween(1, 365)
			return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
		})
	r.Register("randomWeekday", CategoryTime,
		"Random day of the week", func() string {
			return pick(weekdays)
		})
	r.Register("randomMonth", CategoryTime,
		"Random month name", func() string {
			return pick(months)
		})
}
