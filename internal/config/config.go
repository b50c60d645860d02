// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"

	"github.com/wneessen/waybar-surf/internal/surf"
)

const (
	configEnv = "WAYBARSURF"

	ProviderOpenMeteo = "open-meteo"
	MaxForecastDays   = 16

	DefaultTextTpl    = "{{.Current.RatingIcon}} {{floatFormat .Current.WaveHeight 1}}ft"
	DefaultAltTextTpl = "{{.Current.RatingIcon}} {{.Spot.Name}} {{.Current.Quality.Score}}"
	DefaultTooltipTpl = "{{.Spot.Name}}{{if .Synthetic}} ({{loc \"synthetic\"}}){{end}}\n" +
		"{{.Current.Quality.Description}}\n" +
		"{{loc \"waves\"}}: {{floatFormat .Current.WaveHeight 1}}ft @ {{floatFormat .Current.WavePeriod 0}}s\n" +
		"{{loc \"swell\"}}: {{floatFormat .Current.SwellHeight 1}}ft {{.Current.SwellDirection}}\n" +
		"{{loc \"wind\"}}: {{windDirIcon .Current.WindDirection}} {{.Current.WindDirection}}" +
		"{{if .HasWind}} • {{floatFormat .Wind.Speed 0}}kn{{end}}\n" +
		"{{if .HasEpic}}{{.EpicMessage}}\n{{end}}" +
		"\n🌅 {{localizedTime .SunriseTime}} • 🌇 {{localizedTime .SunsetTime}}"
	DefaultAltTooltipTpl = "{{.Spot.Name}}\n" +
		"{{range .Daily}}{{timeFormat .Date \"Mon\"}}: {{.RatingIcon}} {{floatFormat .MaxWaveHeight 1}}ft" +
		"{{if .HasBestHour}} ({{timeFormat .BestHour.Time \"15:04\"}}){{end}}\n{{end}}" +
		"{{.MoonPhaseIcon}} {{loc .MoonPhase}}"
)

// Spot is a configured surf spot.
type Spot struct {
	ID        string  `fig:"id"`
	Name      string  `fig:"name"`
	Latitude  float64 `fig:"latitude"`
	Longitude float64 `fig:"longitude"`
}

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Marine struct {
		// Allowed value: open-meteo
		Provider string `fig:"provider" default:"open-meteo"`
		Timezone string `fig:"timezone" default:"America/New_York"`
		// Allowed value: 1 to 16, 0 selects the default
		ForecastDays int `fig:"forecast_days" default:"7"`
		// Responses are reused for this long before the API is queried again
		CacheTTL time.Duration `fig:"cache_ttl" default:"10m"`
		// 0 seeds the mock generator from the clock
		MockSeed uint64 `fig:"mock_seed"`
	} `fig:"marine"`

	Wind struct {
		Disable bool `fig:"disable"`
	} `fig:"wind"`

	Intervals struct {
		MarineUpdate time.Duration `fig:"marine_update" default:"30m"`
		Output       time.Duration `fig:"output" default:"30s"`
		AlertCheck   time.Duration `fig:"alert_check" default:"1m"`
	} `fig:"intervals"`

	Alerts struct {
		Window  time.Duration `fig:"window" default:"24h"`
		Disable bool          `fig:"disable"`
	} `fig:"alerts"`

	Templates struct {
		Text       string `fig:"text"`
		AltText    string `fig:"alt_text"`
		Tooltip    string `fig:"tooltip"`
		AltTooltip string `fig:"alt_tooltip"`
	} `fig:"templates"`

	Server struct {
		Enable bool   `fig:"enable"`
		Listen string `fig:"listen" default:"127.0.0.1:8080"`
	} `fig:"server"`

	Spots []Spot `fig:"spots"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Marine.Provider != ProviderOpenMeteo {
		return fmt.Errorf("invalid marine provider: %s", c.Marine.Provider)
	}
	if c.Marine.ForecastDays < 1 || c.Marine.ForecastDays > MaxForecastDays {
		return fmt.Errorf("invalid forecast days: %d", c.Marine.ForecastDays)
	}
	if c.Marine.CacheTTL <= 0 {
		return fmt.Errorf("invalid marine cache ttl: %s", c.Marine.CacheTTL)
	}
	if c.Intervals.MarineUpdate <= 0 {
		return fmt.Errorf("invalid marine update interval: %s", c.Intervals.MarineUpdate)
	}
	if c.Intervals.Output <= 0 {
		return fmt.Errorf("invalid output interval: %s", c.Intervals.Output)
	}
	if c.Intervals.AlertCheck <= 0 {
		return fmt.Errorf("invalid alert check interval: %s", c.Intervals.AlertCheck)
	}
	if c.Alerts.Window <= 0 {
		return fmt.Errorf("invalid alert window: %s", c.Alerts.Window)
	}
	if c.Server.Enable && c.Server.Listen == "" {
		return fmt.Errorf("server is enabled but no listen address is set")
	}
	if err := c.validateSpots(); err != nil {
		return err
	}

	if c.Templates.Text == "" {
		c.Templates.Text = DefaultTextTpl
	}
	if c.Templates.AltText == "" {
		c.Templates.AltText = DefaultAltTextTpl
	}
	if c.Templates.Tooltip == "" {
		c.Templates.Tooltip = DefaultTooltipTpl
	}
	if c.Templates.AltTooltip == "" {
		c.Templates.AltTooltip = DefaultAltTooltipTpl
	}

	return nil
}

// SurfSpots returns the configured spots as domain values.
func (c *Config) SurfSpots() []surf.Spot {
	spots := make([]surf.Spot, 0, len(c.Spots))
	for _, spot := range c.Spots {
		spots = append(spots, surf.Spot{
			ID:       spot.ID,
			Name:     spot.Name,
			Location: surf.Location{Latitude: spot.Latitude, Longitude: spot.Longitude},
		})
	}
	return spots
}

func (c *Config) validateSpots() error {
	if len(c.Spots) == 0 {
		for _, spot := range surf.DefaultSpots() {
			c.Spots = append(c.Spots, Spot{
				ID:        spot.ID,
				Name:      spot.Name,
				Latitude:  spot.Location.Latitude,
				Longitude: spot.Location.Longitude,
			})
		}
		return nil
	}

	seen := make(map[string]struct{}, len(c.Spots))
	for i, spot := range c.Spots {
		if spot.ID == "" {
			return fmt.Errorf("spot at index %d has no id", i)
		}
		if _, ok := seen[spot.ID]; ok {
			return fmt.Errorf("duplicate spot id: %s", spot.ID)
		}
		seen[spot.ID] = struct{}{}
		if spot.Latitude < -90 || spot.Latitude > 90 || spot.Longitude < -180 || spot.Longitude > 180 {
			return fmt.Errorf("invalid coordinates for spot %s: %f, %f", spot.ID, spot.Latitude, spot.Longitude)
		}
		if spot.Name == "" {
			c.Spots[i].Name = spot.ID
		}
	}
	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
