// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"slices"
	"time"

	"github.com/wneessen/waybar-surf/internal/surf"
)

// checkAlerts collects the spots with an excellent hour inside the alert window.
func (s *Service) checkAlerts(context.Context) {
	now := time.Now()
	var names []string
	for _, snap := range s.store.All() {
		if snap.Forecast == nil {
			continue
		}
		if hour, ok := surf.FindEpic(snap.Forecast.Forecast, now, s.config.Alerts.Window); ok {
			s.logger.Debug("epic surf found", "spot", snap.Spot.ID, "time", hour.Time,
				"score", hour.Quality.Score)
			names = append(names, snap.Spot.Name)
		}
	}

	s.alertLock.Lock()
	changed := !slices.Equal(s.epicSpots, names)
	s.epicSpots = names
	s.alertLock.Unlock()

	if changed && len(names) > 0 {
		s.logger.Info(surf.EpicMessage(names))
	}
}

// EpicSpots returns the names of the spots flagged by the last alert check.
func (s *Service) EpicSpots() []string {
	s.alertLock.RLock()
	defer s.alertLock.RUnlock()
	return slices.Clone(s.epicSpots)
}
