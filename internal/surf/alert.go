// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

import (
	"strings"
	"time"
)

// FindEpic returns the first excellent hour strictly between now and now+window.
func FindEpic(hours []ForecastHour, now time.Time, window time.Duration) (ForecastHour, bool) {
	until := now.Add(window)
	for _, hour := range hours {
		if hour.Time.After(now) && hour.Time.Before(until) && hour.Quality.Rating == RatingExcellent {
			return hour, true
		}
	}
	return ForecastHour{}, false
}

// EpicMessage returns the alert line for the given spot names, or an empty string if there
// are none.
func EpicMessage(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "🔥 Epic surf coming to " + strings.Join(names, " and ") + "!"
}
