// Package forecast reduces a provider's 3-hourly forecast list to one entry per day.
package forecast

import (
	"time"

	"weather-dashboard/models"
)

// MaxDays caps the number of entries Normalize returns
const MaxDays = 7

// Normalize keeps the first entry of each distinct weekday, in input order,
// and returns at most MaxDays entries. Weekdays are computed in loc; a nil
// loc means time.Local. The input slice is not modified.
func Normalize(entries []models.ForecastEntry, loc *time.Location) []models.ForecastEntry {
	if loc == nil {
		loc = time.Local
	}

	days := make([]models.ForecastEntry, 0, MaxDays)
	var seen [7]bool
	for _, entry := range entries {
		if len(days) == MaxDays {
			break
		}
		wd := entry.Timestamp.In(loc).Weekday()
		if seen[wd] {
			continue
		}
		seen[wd] = true
		days = append(days, entry)
	}
	return days
}
