// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

import (
	"errors"
	"time"
)

// ErrEmptySeries is returned when a raw series carries no hours at all.
var ErrEmptySeries = errors.New("raw series contains no hourly samples")

// CurrentHourIndex locates the entry covering now: the index right before the first timestamp
// not earlier than now, or the last index if every timestamp lies in the past. The boolean
// is false for an empty sequence, in which case the index is 0 and must not be used.
func CurrentHourIndex(times []time.Time, now time.Time) (int, bool) {
	if len(times) == 0 {
		return 0, false
	}
	for i, t := range times {
		if !t.Before(now) {
			return max(0, i-1), true
		}
	}
	return len(times) - 1, true
}

// Parse converts a raw series into a LocationForecast. The current snapshot is taken from the
// current-hour index and stamped with now; every index of the series becomes a forecast entry
// stamped with its own upstream time. Missing values count as 0.
func Parse(raw *RawSeries, loc Location, now time.Time) (*LocationForecast, error) {
	idx, ok := CurrentHourIndex(raw.timeAxis(), now)
	if !ok {
		return nil, ErrEmptySeries
	}

	current := raw.hour(idx)
	current.Time = now

	forecast := make([]ForecastHour, raw.Len())
	for i := range forecast {
		forecast[i] = raw.hour(i)
	}

	return &LocationForecast{
		Location: loc,
		Current:  current,
		Forecast: forecast,
	}, nil
}

func (r *RawSeries) timeAxis() []time.Time {
	if r == nil {
		return nil
	}
	return r.Time
}

// hour builds the scored ForecastHour for index i.
func (r *RawSeries) hour(i int) ForecastHour {
	waveHeight := r.WaveHeight.At(i)
	wavePeriod := r.WavePeriod.At(i)
	windSpeed := r.WindWaveHeight.At(i)
	windDirection := r.WindWaveDirection.At(i)

	return ForecastHour{
		Time:           r.Time[i],
		WaveHeight:     MetersToFeet(waveHeight),
		WavePeriod:     wavePeriod,
		WindSpeed:      MetersPerSecondToKnots(windSpeed),
		WindDirection:  CompassFromDegrees(windDirection),
		SwellHeight:    MetersToFeet(r.SwellWaveHeight.At(i)),
		SwellPeriod:    r.SwellWavePeriod.At(i),
		SwellDirection: CompassFromDegrees(r.SwellWaveDirection.At(i)),
		Quality:        Classify(waveHeight, wavePeriod, windSpeed, windDirection),
	}
}
