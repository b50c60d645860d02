// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

const (
	// DefaultDays is the number of daily summaries produced when no count is given.
	DefaultDays = 7
	hoursPerDay = 24
)

// DailySummary condenses one day of hourly forecasts.
type DailySummary struct {
	Day           int     `json:"day"`
	Hours         int     `json:"hours"`
	MaxWaveHeight float64 `json:"maxWaveHeight"`
	BestQuality   Rating  `json:"bestQuality"`
}

// AggregateDaily reduces hourly forecasts into one summary per day. Day d covers the indices
// [d*24, d*24+24) of hours. Days without hours report a max wave height of 0 and a poor rating.
// A non-positive days value selects DefaultDays.
func AggregateDaily(hours []ForecastHour, days int) []DailySummary {
	if days <= 0 {
		days = DefaultDays
	}

	summaries := make([]DailySummary, days)
	for day := range summaries {
		summary := DailySummary{Day: day, BestQuality: RatingPoor}
		for _, hour := range dayWindow(hours, day) {
			summary.Hours++
			if hour.WaveHeight > summary.MaxWaveHeight {
				summary.MaxWaveHeight = hour.WaveHeight
			}
			if hour.Quality.Rating.Rank() > summary.BestQuality.Rank() {
				summary.BestQuality = hour.Quality.Rating
			}
		}
		summaries[day] = summary
	}
	return summaries
}

// BestHour picks the most attractive hour of a day, weighting wave height by 3 for excellent,
// 2 for good and 1 otherwise. The earliest hour wins ties. It returns false if the day has
// no hours.
func BestHour(hours []ForecastHour, day int) (ForecastHour, bool) {
	window := dayWindow(hours, day)
	if len(window) == 0 {
		return ForecastHour{}, false
	}

	best, bestScore := 0, -1.0
	for i, hour := range window {
		if score := hour.WaveHeight * ratingWeight(hour.Quality.Rating); score > bestScore {
			best, bestScore = i, score
		}
	}
	return window[best], true
}

func ratingWeight(r Rating) float64 {
	switch r {
	case RatingExcellent:
		return 3
	case RatingGood:
		return 2
	default:
		return 1
	}
}

// dayWindow returns the hours of the given day, clipped to the available length.
func dayWindow(hours []ForecastHour, day int) []ForecastHour {
	start := day * hoursPerDay
	if day < 0 || start >= len(hours) {
		return nil
	}
	return hours[start:min(start+hoursPerDay, len(hours))]
}
