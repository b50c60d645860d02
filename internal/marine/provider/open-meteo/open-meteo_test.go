// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/wneessen/waybar-surf/internal/http"
	"github.com/wneessen/waybar-surf/internal/logger"
	"github.com/wneessen/waybar-surf/internal/marine"
	"github.com/wneessen/waybar-surf/internal/surf"
	"github.com/wneessen/waybar-surf/internal/testhelper"
)

const testFile = "../../../../testdata/marine.json"

var testLocation = surf.Location{Latitude: 40.5897, Longitude: -72.8675}

func newTestProvider(t *testing.T, rt testhelper.MockRoundTripper) *OpenMeteo {
	t.Helper()
	client := http.New(logger.New(slog.LevelInfo))
	client.Transport = rt
	provider, err := New(client, logger.New(slog.LevelDebug), "America/New_York", 7)
	if err != nil {
		t.Fatalf("failed to create provider: %s", err)
	}
	return provider
}

func TestNew(t *testing.T) {
	t.Run("new provider succeeds", func(t *testing.T) {
		var provider marine.Provider
		var err error
		provider, err = New(http.New(logger.New(slog.LevelInfo)), logger.New(slog.LevelInfo), "", 0)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		if provider.Name() != name {
			t.Errorf("expected provider name to be %s, got %s", name, provider.Name())
		}
	})
	t.Run("new provider without http client fails", func(t *testing.T) {
		_, err := New(nil, logger.New(slog.LevelInfo), "", 7)
		if err == nil {
			t.Fatal("expected provider creation to fail")
		}
	})
	t.Run("new provider without logger fails", func(t *testing.T) {
		_, err := New(http.New(logger.New(slog.LevelInfo)), nil, "", 7)
		if err == nil {
			t.Fatal("expected provider creation to fail")
		}
	})
	t.Run("non-positive forecast days fall back to the default", func(t *testing.T) {
		provider, err := New(http.New(logger.New(slog.LevelInfo)), logger.New(slog.LevelInfo), "", -3)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		if provider.forecastDays != surf.DefaultDays {
			t.Errorf("expected %d forecast days, got %d", surf.DefaultDays, provider.forecastDays)
		}
	})
}

func TestOpenMeteo_GetSeries(t *testing.T) {
	t.Run("series is decoded from the API response", func(t *testing.T) {
		var query string
		provider := newTestProvider(t, testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
			query = req.URL.RawQuery
			data, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("failed to open JSON response file: %s", err)
			}
			return &stdhttp.Response{StatusCode: 200, Body: data, Header: make(stdhttp.Header)}, nil
		}})

		series, err := provider.GetSeries(t.Context(), testLocation)
		if err != nil {
			t.Fatalf("failed to get series: %s", err)
		}
		for _, want := range []string{"forecast_days=7", "timezone=America%2FNew_York", "swell_wave_direction"} {
			if !strings.Contains(query, want) {
				t.Errorf("expected query to contain %q, got %q", want, query)
			}
		}
		if series.Len() != 4 {
			t.Fatalf("expected 4 hours, got %d", series.Len())
		}
		wantFirst := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)
		if !series.Time[0].Equal(wantFirst) {
			t.Errorf("expected first hour to be %s, got %s", wantFirst, series.Time[0].UTC())
		}
		if got := series.WaveHeight.At(0); got != 1.5 {
			t.Errorf("expected wave height 1.5, got %f", got)
		}
		if series.WaveHeight[2].IsSet() {
			t.Error("expected null wave height to be unset")
		}
		if got := series.WaveHeight.At(2); got != 0 {
			t.Errorf("expected null wave height to read as 0, got %f", got)
		}
		if got := series.SwellWaveDirection.At(3); got != 120 {
			t.Errorf("expected swell direction 120, got %f", got)
		}
	})
	t.Run("decoded series parses into a forecast", func(t *testing.T) {
		provider := newTestProvider(t, testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
			data, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("failed to open JSON response file: %s", err)
			}
			return &stdhttp.Response{StatusCode: 200, Body: data, Header: make(stdhttp.Header)}, nil
		}})
		series, err := provider.GetSeries(t.Context(), testLocation)
		if err != nil {
			t.Fatalf("failed to get series: %s", err)
		}
		now := time.Date(2025, 6, 1, 4, 30, 0, 0, time.UTC)
		fcast, err := surf.Parse(series, testLocation, now)
		if err != nil {
			t.Fatalf("failed to parse series: %s", err)
		}
		if fcast.Current.Quality.Rating != surf.RatingExcellent {
			t.Errorf("expected current rating to be excellent, got %s", fcast.Current.Quality.Rating)
		}
		if fcast.Forecast[2].Quality.Rating != surf.RatingPoor {
			t.Errorf("expected missing hour to be poor, got %s", fcast.Forecast[2].Quality.Rating)
		}
	})
	t.Run("non-200 response fails", func(t *testing.T) {
		provider := newTestProvider(t, testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 400,
				Body:       io.NopCloser(strings.NewReader(`{"error":true,"reason":"invalid latitude"}`)),
				Header:     make(stdhttp.Header),
			}, nil
		}})
		if _, err := provider.GetSeries(t.Context(), testLocation); err == nil {
			t.Fatal("expected series retrieval to fail")
		}
	})
	t.Run("transport failure fails", func(t *testing.T) {
		provider := newTestProvider(t, testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("connection refused")
		}})
		if _, err := provider.GetSeries(t.Context(), testLocation); err == nil {
			t.Fatal("expected series retrieval to fail")
		}
	})
	t.Run("malformed time axis fails", func(t *testing.T) {
		provider := newTestProvider(t, testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader(`{"hourly":{"time":["yesterday"]}}`)),
				Header:     make(stdhttp.Header),
			}, nil
		}})
		if _, err := provider.GetSeries(t.Context(), testLocation); err == nil {
			t.Fatal("expected series retrieval to fail")
		}
	})
	t.Run("online API returns a series", func(t *testing.T) {
		testhelper.PerformIntegrationTests(t)
		provider, err := New(http.New(logger.New(slog.LevelInfo)), logger.New(slog.LevelDebug), "auto", 2)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		series, err := provider.GetSeries(t.Context(), testLocation)
		if err != nil {
			t.Fatalf("failed to get series: %s", err)
		}
		if series.Len() == 0 {
			t.Error("expected a non-empty series")
		}
	})
}
