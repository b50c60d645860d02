// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/de"
	"github.com/vorlif/spreak"

	"github.com/wneessen/waybar-surf/internal/config"
	"github.com/wneessen/waybar-surf/internal/i18n"
	"github.com/wneessen/waybar-surf/internal/store"
	"github.com/wneessen/waybar-surf/internal/surf"
)

// HourView wraps a scored forecast hour with presentation-related fields.
type HourView struct {
	surf.ForecastHour

	Rating      string
	RatingIcon  string
	RatingColor string
	WindDirIcon string
}

// DayView wraps a daily summary with its date and best hour.
type DayView struct {
	surf.DailySummary

	Date        time.Time
	Rating      string
	RatingIcon  string
	RatingColor string
	BestHour    HourView
	HasBestHour bool
}

type TemplateContext struct {
	Spot       surf.Spot
	Source     string
	Synthetic  bool
	UpdateTime time.Time

	SunriseTime   time.Time
	SunsetTime    time.Time
	MoonPhase     string
	MoonPhaseIcon string

	Wind    WindView
	HasWind bool

	EpicSpots   []string
	HasEpic     bool
	EpicMessage string

	Current  HourView
	Upcoming []HourView
	Daily    []DayView
}

// WindView is measured wind for the current hour.
type WindView struct {
	Speed       float64
	Gusts       float64
	Direction   string
	DirIcon     string
	MeasuredFor time.Time
}

type Presenter struct {
	TextTemplate       *template.Template
	AltTextTemplate    *template.Template
	TooltipTemplate    *template.Template
	AltTooltipTemplate *template.Template

	days      int
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
}

func New(conf *config.Config, loc *spreak.Localizer) (*Presenter, error) {
	collection, err := humanize.New(humanize.WithLocale(de.New()))
	if err != nil {
		return nil, fmt.Errorf("failed to create humanizer: %w", err)
	}
	pres := &Presenter{
		days:      conf.Marine.ForecastDays,
		localizer: loc,
		humanizer: collection.CreateHumanizer(i18n.Tag(conf.Locale)),
	}

	templates := []struct {
		name   string
		text   string
		target **template.Template
	}{
		{"text", conf.Templates.Text, &pres.TextTemplate},
		{"alt_text", conf.Templates.AltText, &pres.AltTextTemplate},
		{"tooltip", conf.Templates.Tooltip, &pres.TooltipTemplate},
		{"alt_tooltip", conf.Templates.AltTooltip, &pres.AltTooltipTemplate},
	}
	for _, tpl := range templates {
		parsed, err := template.New(tpl.name).Funcs(pres.templateFuncMap()).Parse(tpl.text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", tpl.name, err)
		}
		*tpl.target = parsed
	}

	// Execute the templates once so broken field references fail at startup
	if _, err = pres.Render(pres.sampleContext()); err != nil {
		return nil, err
	}

	return pres, nil
}

// BuildContext assembles the template context for one spot snapshot. A snapshot without a
// forecast yields a context that only carries the spot.
func (p *Presenter) BuildContext(snap store.Snapshot, now, sunrise, sunset time.Time, moonPhase string,
	epicSpots []string,
) TemplateContext {
	ctx := TemplateContext{
		Spot:          snap.Spot,
		Source:        snap.Source,
		Synthetic:     snap.Synthetic,
		SunriseTime:   sunrise,
		SunsetTime:    sunset,
		MoonPhase:     moonPhase,
		MoonPhaseIcon: MoonPhaseIcon[moonPhase],
		EpicSpots:     epicSpots,
		HasEpic:       len(epicSpots) > 0,
		EpicMessage:   surf.EpicMessage(epicSpots),
	}
	if snap.Forecast == nil {
		return ctx
	}

	ctx.UpdateTime = snap.UpdatedAt
	ctx.Current = p.viewFromHour(snap.Forecast.Current)
	upcoming := snap.Forecast.Upcoming(now)
	ctx.Upcoming = make([]HourView, 0, len(upcoming))
	for _, hour := range upcoming {
		ctx.Upcoming = append(ctx.Upcoming, p.viewFromHour(hour))
	}

	daily := snap.Daily
	if daily == nil {
		daily = surf.AggregateDaily(snap.Forecast.Forecast, p.days)
	}
	ctx.Daily = make([]DayView, 0, len(daily))
	for _, summary := range daily {
		ctx.Daily = append(ctx.Daily, p.viewFromDay(snap.Forecast.Forecast, summary))
	}

	if wind, ok := snap.Wind.At(now); ok {
		ctx.HasWind = true
		ctx.Wind = WindView{
			Speed:       wind.Speed,
			Gusts:       wind.Gusts,
			Direction:   wind.Compass(),
			DirIcon:     p.windDirIcon(wind.Compass()),
			MeasuredFor: wind.Time,
		}
	}

	return ctx
}

// Render executes all templates and returns their output keyed by template name.
func (p *Presenter) Render(ctx TemplateContext) (map[string]string, error) {
	templates := []struct {
		name string
		tpl  *template.Template
	}{
		{"text", p.TextTemplate},
		{"alt_text", p.AltTextTemplate},
		{"tooltip", p.TooltipTemplate},
		{"alt_tooltip", p.AltTooltipTemplate},
	}

	output := make(map[string]string, len(templates))
	for _, tpl := range templates {
		buf := bytes.NewBuffer(nil)
		if err := tpl.tpl.Execute(buf, ctx); err != nil {
			return nil, fmt.Errorf("failed to render %s template: %w", tpl.name, err)
		}
		output[tpl.name] = buf.String()
	}
	return output, nil
}

func (p *Presenter) viewFromHour(hour surf.ForecastHour) HourView {
	return HourView{
		ForecastHour: hour,
		Rating:       p.ratingLabel(hour.Quality.Rating),
		RatingIcon:   RatingIcons[hour.Quality.Rating],
		RatingColor:  RatingColors[hour.Quality.Rating],
		WindDirIcon:  p.windDirIcon(hour.WindDirection),
	}
}

func (p *Presenter) viewFromDay(hours []surf.ForecastHour, summary surf.DailySummary) DayView {
	view := DayView{
		DailySummary: summary,
		Rating:       p.ratingLabel(summary.BestQuality),
		RatingIcon:   RatingIcons[summary.BestQuality],
		RatingColor:  RatingColors[summary.BestQuality],
	}
	if best, ok := surf.BestHour(hours, summary.Day); ok {
		view.BestHour = p.viewFromHour(best)
		view.HasBestHour = true
		view.Date = hours[summary.Day*24].Time
	}
	return view
}

func (p *Presenter) ratingLabel(rating surf.Rating) string {
	if raw, ok := ratingLabels[rating]; ok && p.localizer != nil {
		return p.localizer.Get(raw)
	}
	return rating.String()
}

func (p *Presenter) sampleContext() TemplateContext {
	now := time.Now()
	spot := surf.DefaultSpots()[0]
	fcast := surf.GenerateMock(spot.Location, now, surf.NewMockRand(1))
	snap := store.Snapshot{
		Spot:      spot,
		Forecast:  fcast,
		Source:    store.SourceMock,
		Synthetic: true,
		UpdatedAt: now,
	}
	return p.BuildContext(snap, now, now, now, "Full Moon", []string{spot.Name})
}
