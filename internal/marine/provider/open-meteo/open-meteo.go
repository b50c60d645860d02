// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements a marine.Provider for the Open-Meteo Marine API.
package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/waybar-surf/internal/http"
	"github.com/wneessen/waybar-surf/internal/logger"
	"github.com/wneessen/waybar-surf/internal/surf"
)

const (
	name        = "open-meteo-marine"
	apiEndpoint = "https://marine-api.open-meteo.com/v1/marine"
	apiTimeout  = time.Second * 10
	timeLayout  = "2006-01-02T15:04"
)

var dataFields = []string{
	"wave_height", "wave_period", "wave_direction",
	"wind_wave_height", "wind_wave_period", "wind_wave_direction",
	"swell_wave_height", "swell_wave_period", "swell_wave_direction",
}

type OpenMeteo struct {
	endpoint     string
	timezone     string
	forecastDays int
	log          *logger.Logger
	http         *http.Client
}

type response struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationTimeMs     float64           `json:"generationtime_ms"`
	UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	HourlyUnits          map[string]string `json:"hourly_units"`
	Hourly               struct {
		Time               []string      `json:"time"`
		WaveHeight         surf.Sequence `json:"wave_height"`
		WavePeriod         surf.Sequence `json:"wave_period"`
		WaveDirection      surf.Sequence `json:"wave_direction"`
		WindWaveHeight     surf.Sequence `json:"wind_wave_height"`
		WindWavePeriod     surf.Sequence `json:"wind_wave_period"`
		WindWaveDirection  surf.Sequence `json:"wind_wave_direction"`
		SwellWaveHeight    surf.Sequence `json:"swell_wave_height"`
		SwellWavePeriod    surf.Sequence `json:"swell_wave_period"`
		SwellWaveDirection surf.Sequence `json:"swell_wave_direction"`
	} `json:"hourly"`
}

// New returns an Open-Meteo marine provider. timezone is passed on to the API and controls the
// local time of the returned hourly axis.
func New(http *http.Client, log *logger.Logger, timezone string, forecastDays int) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if forecastDays <= 0 {
		forecastDays = surf.DefaultDays
	}

	return &OpenMeteo{
		endpoint:     apiEndpoint,
		timezone:     timezone,
		forecastDays: forecastDays,
		http:         http,
		log:          log,
	}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) GetSeries(ctx context.Context, loc surf.Location) (*surf.RawSeries, error) {
	res := new(response)

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	query.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	query.Set("hourly", strings.Join(dataFields, ","))
	query.Set("forecast_days", strconv.Itoa(o.forecastDays))
	if o.timezone != "" {
		query.Set("timezone", o.timezone)
	}

	code, err := o.http.GetWithTimeout(ctx, o.endpoint, res, query, nil, apiTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve marine data from Open-Meteo API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("Open-Meteo marine API returned non-positive response code: %d", code)
	}

	times, err := parseTimes(res.Hourly.Time, res.UTCOffsetSeconds, res.TimezoneAbbreviation)
	if err != nil {
		return nil, err
	}
	o.log.Debug("marine series received", "source", name, "hours", len(times),
		"latitude", res.Latitude, "longitude", res.Longitude, "generation_ms", res.GenerationTimeMs)

	return &surf.RawSeries{
		Time:               times,
		WaveHeight:         res.Hourly.WaveHeight,
		WavePeriod:         res.Hourly.WavePeriod,
		WaveDirection:      res.Hourly.WaveDirection,
		WindWaveHeight:     res.Hourly.WindWaveHeight,
		WindWavePeriod:     res.Hourly.WindWavePeriod,
		WindWaveDirection:  res.Hourly.WindWaveDirection,
		SwellWaveHeight:    res.Hourly.SwellWaveHeight,
		SwellWavePeriod:    res.Hourly.SwellWavePeriod,
		SwellWaveDirection: res.Hourly.SwellWaveDirection,
	}, nil
}

// parseTimes converts the local wall clock times of the API into absolute times using the
// reported UTC offset.
func parseTimes(raw []string, offsetSeconds int, zoneName string) ([]time.Time, error) {
	zone := time.FixedZone(zoneName, offsetSeconds)
	times := make([]time.Time, len(raw))
	for i, val := range raw {
		apiTime, err := time.ParseInLocation(timeLayout, val, zone)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time at index %d: %w", i, err)
		}
		times[i] = apiTime
	}
	return times, nil
}
