// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package chart renders daily surf summaries as an HTML bar chart.
package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wneessen/waybar-surf/internal/presenter"
	"github.com/wneessen/waybar-surf/internal/surf"
)

const (
	width  = "900px"
	height = "420px"
)

// Daily builds a bar chart with one bar per day. The bar height is the day's maximum wave height
// in feet and the bar color follows the day's best rating.
func Daily(spot surf.Spot, start time.Time, days []surf.DailySummary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s surf forecast", spot.Name),
			Width:     width,
			Height:    height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    spot.Name,
			Subtitle: "Max wave height (ft) per day",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ft"}),
	)

	labels := make([]string, 0, len(days))
	values := make([]opts.BarData, 0, len(days))
	for _, day := range days {
		labels = append(labels, start.AddDate(0, 0, day.Day).Format("Mon 02"))
		values = append(values, opts.BarData{
			Name:  day.BestQuality.String(),
			Value: day.MaxWaveHeight,
			ItemStyle: &opts.ItemStyle{
				Color: presenter.RatingColors[day.BestQuality],
			},
		})
	}
	bar.SetXAxis(labels).AddSeries("max wave height", values)

	return bar
}

// RenderDaily writes the daily chart as a standalone HTML page.
func RenderDaily(w io.Writer, spot surf.Spot, start time.Time, days []surf.DailySummary) error {
	if err := Daily(spot, start, days).Render(w); err != nil {
		return fmt.Errorf("failed to render daily chart: %w", err)
	}
	return nil
}
