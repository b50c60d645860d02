// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weather holds measured 10 m wind data. It is shown next to the surf forecast but
// never feeds into the quality score.
package weather

import (
	"context"
	"time"

	"github.com/wneessen/waybar-surf/internal/surf"
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	GetWind(ctx context.Context, loc surf.Location) (*Data, error)
}

type Data struct {
	GeneratedAt time.Time
	Location    surf.Location

	Current Wind
	Hourly  map[DayHour]Wind
}

// Wind is a single wind observation. Speed and gusts are in knots, direction in degrees.
type Wind struct {
	Time      time.Time
	Speed     float64
	Gusts     float64
	Direction float64
}

type DayHour int64

func NewData() *Data {
	return &Data{
		Hourly: make(map[DayHour]Wind),
	}
}

func NewDayHour(t time.Time) DayHour {
	return DayHour(t.Truncate(time.Hour).Unix())
}

func (t DayHour) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// At returns the wind for the hour containing t. Without an hourly entry the current
// observation is used if it was taken in that hour.
func (d *Data) At(t time.Time) (Wind, bool) {
	if d == nil {
		return Wind{}, false
	}
	if wind, ok := d.Hourly[NewDayHour(t)]; ok {
		return wind, true
	}
	if !d.Current.Time.IsZero() && NewDayHour(d.Current.Time) == NewDayHour(t) {
		return d.Current, true
	}
	return Wind{}, false
}

// Compass returns the 16-point compass name of the wind direction.
func (w Wind) Compass() string {
	return surf.CompassFromDegrees(w.Direction)
}
