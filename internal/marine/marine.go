// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package marine defines the source of raw hourly marine forecasts.
package marine

import (
	"context"

	"github.com/wneessen/waybar-surf/internal/surf"
)

// Provider is implemented by each marine forecast API backend. GetSeries either delivers
// a raw hourly series or fails; callers fall back to synthetic data on failure.
type Provider interface {
	Name() string
	GetSeries(ctx context.Context, loc surf.Location) (*surf.RawSeries, error)
}
