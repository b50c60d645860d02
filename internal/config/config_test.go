// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	const (
		expectProvider             = "open-meteo"
		expectTimezone             = "America/New_York"
		expectLogLevel             = slog.LevelInfo
		expectForecastDays         = 7
		expectIntervalMarineUpdate = time.Minute * 30
		expectIntervalOutput       = time.Second * 30
		expectIntervalAlertCheck   = time.Minute
		expectAlertWindow          = time.Hour * 24
		expectListen               = "127.0.0.1:8080"
		expectCacheTTL             = time.Minute * 10
	)
	t.Run("new config with all defaults set", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Marine.Provider != expectProvider {
			t.Errorf("expected marine provider to be: %s, got %s", expectProvider, conf.Marine.Provider)
		}
		if conf.Marine.Timezone != expectTimezone {
			t.Errorf("expected marine timezone to be: %s, got %s", expectTimezone, conf.Marine.Timezone)
		}
		if conf.LogLevel != expectLogLevel {
			t.Errorf("expected log level to be: %s, got %s", expectLogLevel, conf.LogLevel)
		}
		if conf.Marine.ForecastDays != expectForecastDays {
			t.Errorf("expected forecast days to be: %d, got %d", expectForecastDays, conf.Marine.ForecastDays)
		}
		if conf.Marine.CacheTTL != expectCacheTTL {
			t.Errorf("expected marine cache ttl to be: %s, got %s", expectCacheTTL, conf.Marine.CacheTTL)
		}
		if conf.Intervals.MarineUpdate != expectIntervalMarineUpdate {
			t.Errorf("expected marine update interval to be: %s, got %s", expectIntervalMarineUpdate,
				conf.Intervals.MarineUpdate)
		}
		if conf.Intervals.Output != expectIntervalOutput {
			t.Errorf("expected output interval to be: %s, got %s", expectIntervalOutput, conf.Intervals.Output)
		}
		if conf.Intervals.AlertCheck != expectIntervalAlertCheck {
			t.Errorf("expected alert check interval to be: %s, got %s", expectIntervalAlertCheck,
				conf.Intervals.AlertCheck)
		}
		if conf.Alerts.Window != expectAlertWindow {
			t.Errorf("expected alert window to be: %s, got %s", expectAlertWindow, conf.Alerts.Window)
		}
		if conf.Server.Enable {
			t.Error("expected server to be disabled by default")
		}
		if conf.Server.Listen != expectListen {
			t.Errorf("expected listen address to be: %s, got %s", expectListen, conf.Server.Listen)
		}
	})
	t.Run("default templates are set", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Templates.Text != DefaultTextTpl {
			t.Errorf("expected default text template, got %q", conf.Templates.Text)
		}
		if conf.Templates.AltText != DefaultAltTextTpl {
			t.Errorf("expected default alt text template, got %q", conf.Templates.AltText)
		}
		if conf.Templates.Tooltip != DefaultTooltipTpl {
			t.Errorf("expected default tooltip template, got %q", conf.Templates.Tooltip)
		}
		if conf.Templates.AltTooltip != DefaultAltTooltipTpl {
			t.Errorf("expected default alt tooltip template, got %q", conf.Templates.AltTooltip)
		}
	})
	t.Run("default spots are used without configured spots", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		spots := conf.SurfSpots()
		if len(spots) != 2 {
			t.Fatalf("expected 2 default spots, got %d", len(spots))
		}
		if spots[0].ID != "smith-point" || spots[0].Location.Latitude != 40.5897 {
			t.Errorf("unexpected first spot: %+v", spots[0])
		}
		if spots[1].ID != "brick" || spots[1].Location.Longitude != -74.1097 {
			t.Errorf("unexpected second spot: %+v", spots[1])
		}
	})
	t.Run("custom templates from env are kept", func(t *testing.T) {
		t.Setenv("WAYBARSURF_TEMPLATES_TEXT", "{{.Spot.Name}}")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Templates.Text != "{{.Spot.Name}}" {
			t.Errorf("expected custom text template, got %q", conf.Templates.Text)
		}
	})
	t.Run("new config with invalid values from env", func(t *testing.T) {
		t.Setenv("WAYBARSURF_LOGLEVEL", "invalid")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("config validate forecast days", func(t *testing.T) {
		for _, days := range []string{"-1", "17"} {
			t.Setenv("WAYBARSURF_MARINE_FORECAST_DAYS", days)
			if _, err := New(); err == nil {
				t.Errorf("expected config with %s forecast days to fail, but didn't", days)
			}
		}
	})
	t.Run("zero forecast days select the default", func(t *testing.T) {
		t.Setenv("WAYBARSURF_MARINE_FORECAST_DAYS", "0")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Marine.ForecastDays != 7 {
			t.Errorf("expected forecast days to be: 7, got %d", conf.Marine.ForecastDays)
		}
	})
	t.Run("config validate marine provider", func(t *testing.T) {
		t.Setenv("WAYBARSURF_MARINE_PROVIDER", "invalid")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("config validate intervals", func(t *testing.T) {
		tests := []struct {
			name string
			env  string
		}{
			{"marine update", "WAYBARSURF_INTERVALS_MARINE_UPDATE"},
			{"output", "WAYBARSURF_INTERVALS_OUTPUT"},
			{"alert check", "WAYBARSURF_INTERVALS_ALERT_CHECK"},
			{"alert window", "WAYBARSURF_ALERTS_WINDOW"},
			{"marine cache ttl", "WAYBARSURF_MARINE_CACHE_TTL"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Setenv(tt.env, "-1s")
				_, err := New()
				if err == nil {
					t.Error("expected config to fail, but didn't")
				}
			})
		}
	})
}

func TestNewFromFile(t *testing.T) {
	t.Run("reading config from valid file succeeds", func(t *testing.T) {
		conf, err := NewFromFile("../../etc", "config.toml")
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Marine.ForecastDays != 7 {
			t.Errorf("expected forecast days to be: 7, got %d", conf.Marine.ForecastDays)
		}
		if conf.Intervals.MarineUpdate != time.Minute*30 {
			t.Errorf("expected marine update interval to be: 30m, got %s", conf.Intervals.MarineUpdate)
		}
		spots := conf.SurfSpots()
		if len(spots) != 2 {
			t.Fatalf("expected 2 spots, got %d", len(spots))
		}
		if spots[0].Name != "Smith Point" {
			t.Errorf("expected first spot to be Smith Point, got %s", spots[0].Name)
		}
	})
	t.Run("reading config from non-existent file fails", func(t *testing.T) {
		_, err := NewFromFile("../../etc", "non-existent.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("reading invalid config file fails", func(t *testing.T) {
		_, err := NewFromFile("../../testdata", "invalid.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("duplicate spot ids fail", func(t *testing.T) {
		_, err := NewFromFile("../../testdata", "duplicate-spots.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
}

func TestConfig_validateSpots(t *testing.T) {
	t.Run("spot without name is named after its id", func(t *testing.T) {
		conf := &Config{Spots: []Spot{{ID: "montauk", Latitude: 41.03, Longitude: -71.94}}}
		if err := conf.validateSpots(); err != nil {
			t.Fatalf("failed to validate spots: %s", err)
		}
		if conf.Spots[0].Name != "montauk" {
			t.Errorf("expected spot name to be montauk, got %s", conf.Spots[0].Name)
		}
	})
	t.Run("spot without id fails", func(t *testing.T) {
		conf := &Config{Spots: []Spot{{Latitude: 41.03, Longitude: -71.94}}}
		if err := conf.validateSpots(); err == nil {
			t.Error("expected validation to fail, but didn't")
		}
	})
	t.Run("spot with invalid coordinates fails", func(t *testing.T) {
		conf := &Config{Spots: []Spot{{ID: "nowhere", Latitude: 91, Longitude: 0}}}
		if err := conf.validateSpots(); err == nil {
			t.Error("expected validation to fail, but didn't")
		}
	})
}
