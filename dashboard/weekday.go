package dashboard

import (
	"time"

	"github.com/rs/zerolog"

	"weather-dashboard/models"
	"weather-dashboard/timezone"
)

// WeekdayZone picks the time zone used to group forecast entries into days
type WeekdayZone func(models.ForecastData) *time.Location

// LocalWeekdays groups by the server's local clock
func LocalWeekdays() WeekdayZone {
	return func(models.ForecastData) *time.Location {
		return time.Local
	}
}

// CityWeekdays groups by the forecast city's own zone. It looks the zone up
// from the city coordinates and falls back to the provider's fixed UTC offset.
func CityWeekdays(tz timezone.Service, logger zerolog.Logger) WeekdayZone {
	return func(data models.ForecastData) *time.Location {
		if tz != nil {
			loc, err := tz.Location(data.Coord.Lat, data.Coord.Lon)
			if err == nil {
				return loc
			}
			logger.Debug().Err(err).Str("city", data.City).Msg("timezone lookup failed, using provider offset")
		}
		return time.FixedZone("", data.TimezoneOffset)
	}
}
