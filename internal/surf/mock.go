// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

import (
	"math"
	"math/rand/v2"
	"time"
)

// MockHours is the number of hourly entries produced by GenerateMock.
const MockHours = 168

// GenerateMock produces a synthetic seven day forecast starting at now, used when live data
// is unavailable. Values vary smoothly with a bounded jitter drawn from rng, so a seeded rng
// yields a reproducible forecast. The winds center on west to north-west.
func GenerateMock(loc Location, now time.Time, rng *rand.Rand) *LocationForecast {
	forecast := make([]ForecastHour, MockHours)
	for i := range forecast {
		step := float64(i)
		baseHeight := 2 + math.Sin(step/24)*1.5 + rng.Float64()*0.5
		period := 8 + math.Sin(step/48)*3 + rng.Float64()*2
		windSpeed := 5 + math.Sin(step/12)*5 + rng.Float64()*3
		windDirection := 270 + math.Sin(step/36)*45

		forecast[i] = ForecastHour{
			Time:           now.Add(time.Duration(i) * time.Hour),
			WaveHeight:     roundTo(baseHeight, 1),
			WavePeriod:     roundTo(period, 1),
			WindSpeed:      roundTo(windSpeed, 1),
			WindDirection:  CompassFromDegrees(windDirection),
			SwellHeight:    roundTo(baseHeight*0.8, 1),
			SwellPeriod:    roundTo(period*1.1, 1),
			SwellDirection: CompassFromDegrees(windDirection + 20),
			Quality:        Classify(baseHeight/feetPerMeter, period, windSpeed, windDirection),
		}
	}

	return &LocationForecast{
		Location: loc,
		Current:  forecast[0],
		Forecast: forecast,
	}
}

// NewMockRand returns a random source for GenerateMock. A zero seed is replaced with the
// current time.
func NewMockRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
