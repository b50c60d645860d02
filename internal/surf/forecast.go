// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package surf turns hourly marine forecast samples into surf quality verdicts and summaries.
//
// All functions in this package are pure. Anything depending on the current time takes it
// as an explicit argument.
package surf

import (
	"time"

	"github.com/wneessen/waybar-surf/internal/vartype"
)

// Location is a geographic position in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Sequence is one hourly field of a raw series. Entries may be missing.
type Sequence []vartype.VarFloat64

// At returns the value at index i. Missing entries and out of range indices yield 0.
func (s Sequence) At(i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i].Value()
}

// NewSequence builds a fully populated Sequence from plain values.
func NewSequence(values ...float64) Sequence {
	seq := make(Sequence, len(values))
	for i, v := range values {
		seq[i] = vartype.NewVariable(v)
	}
	return seq
}

// RawSeries is the upstream hourly marine time series. All sequences share the index of Time;
// heights are in meters, periods in seconds and directions in degrees.
type RawSeries struct {
	Time               []time.Time
	WaveHeight         Sequence
	WavePeriod         Sequence
	WaveDirection      Sequence
	WindWaveHeight     Sequence
	WindWavePeriod     Sequence
	WindWaveDirection  Sequence
	SwellWaveHeight    Sequence
	SwellWavePeriod    Sequence
	SwellWaveDirection Sequence
}

// Len returns the number of hours in the series.
func (r *RawSeries) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Time)
}

// ForecastHour is one scored hour, converted to display units.
type ForecastHour struct {
	Time           time.Time      `json:"time"`
	WaveHeight     float64        `json:"waveHeight"`
	WavePeriod     float64        `json:"wavePeriod"`
	WindSpeed      float64        `json:"windSpeed"`
	WindDirection  string         `json:"windDirection"`
	SwellHeight    float64        `json:"swellHeight"`
	SwellPeriod    float64        `json:"swellPeriod"`
	SwellDirection string         `json:"swellDirection"`
	Quality        QualityVerdict `json:"quality"`
}

// LocationForecast is the complete forecast for one spot. Forecast is ordered chronologically.
type LocationForecast struct {
	Location Location       `json:"location"`
	Current  ForecastHour   `json:"current"`
	Forecast []ForecastHour `json:"forecast"`
}

// CurrentIndex returns the index of the forecast entry covering now.
func (f *LocationForecast) CurrentIndex(now time.Time) int {
	times := make([]time.Time, len(f.Forecast))
	for i := range f.Forecast {
		times[i] = f.Forecast[i].Time
	}
	idx, _ := CurrentHourIndex(times, now)
	return idx
}

// Upcoming returns the forecast entries from the current hour onwards.
func (f *LocationForecast) Upcoming(now time.Time) []ForecastHour {
	if len(f.Forecast) == 0 {
		return nil
	}
	return f.Forecast[f.CurrentIndex(now):]
}
