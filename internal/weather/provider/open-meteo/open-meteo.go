// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements a weather.Provider for measured 10 m wind from the Open-Meteo
// forecast API.
package openmeteo

import (
	"context"
	"fmt"
	"time"

	"github.com/hectormalot/omgo"

	"github.com/wneessen/waybar-surf/internal/logger"
	"github.com/wneessen/waybar-surf/internal/surf"
	"github.com/wneessen/waybar-surf/internal/weather"
)

const (
	name       = "open-meteo"
	apiTimeout = time.Second * 10
	// omgo parses the API times without an offset, so they must be requested in UTC
	apiTimezone = "UTC"

	metricWindSpeed     = "wind_speed_10m"
	metricWindGusts     = "wind_gusts_10m"
	metricWindDirection = "wind_direction_10m"
)

type OpenMeteo struct {
	log    *logger.Logger
	client omgo.Client
}

func New(log *logger.Logger) (*OpenMeteo, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	client, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}

	return &OpenMeteo{log: log, client: client}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) GetWind(ctx context.Context, loc surf.Location) (*weather.Data, error) {
	ctxFetch, cancelFetch := context.WithTimeout(ctx, apiTimeout)
	defer cancelFetch()

	location, err := omgo.NewLocation(loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed create Open-Meteo location from coordinates: %w", err)
	}
	forecast, err := o.client.Forecast(ctxFetch, location, forecastOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve wind data from Open-Meteo API: %w", err)
	}
	data := dataFromForecast(forecast, loc, time.Now())
	o.log.Debug("wind data received", "source", name, "hours", len(data.Hourly))

	return data, nil
}

func forecastOptions() *omgo.Options {
	return &omgo.Options{
		Timezone:      apiTimezone,
		WindspeedUnit: "kn",
		HourlyMetrics: []string{metricWindSpeed, metricWindGusts, metricWindDirection},
	}
}

// dataFromForecast maps an omgo forecast onto weather.Data. Hours with a metric series shorter
// than the time axis get 0 for the missing value.
func dataFromForecast(forecast *omgo.Forecast, loc surf.Location, generated time.Time) *weather.Data {
	data := weather.NewData()
	data.GeneratedAt = generated
	data.Location = loc
	if forecast == nil {
		return data
	}

	current := forecast.CurrentWeather
	data.Current = weather.Wind{
		Time:      generated,
		Speed:     current.WindSpeed,
		Direction: current.WindDirection,
	}
	if current.Time.IsSet() {
		data.Current.Time = current.Time.Time
	}
	speeds := forecast.HourlyMetrics[metricWindSpeed]
	gusts := forecast.HourlyMetrics[metricWindGusts]
	directions := forecast.HourlyMetrics[metricWindDirection]
	for i, hourTime := range forecast.HourlyTimes {
		timePos := weather.NewDayHour(hourTime)
		data.Hourly[timePos] = weather.Wind{
			Time:      timePos.Time(),
			Speed:     valueAt(speeds, i),
			Gusts:     valueAt(gusts, i),
			Direction: valueAt(directions, i),
		}
	}
	if wind, ok := data.Hourly[weather.NewDayHour(data.Current.Time)]; ok {
		data.Current.Gusts = wind.Gusts
	}

	return data
}

func valueAt(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}
