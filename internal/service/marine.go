// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"sync"
	"time"

	"github.com/wneessen/waybar-surf/internal/logger"
	"github.com/wneessen/waybar-surf/internal/store"
	"github.com/wneessen/waybar-surf/internal/surf"
)

// updateForecasts refreshes every spot and prints the updated output.
func (s *Service) updateForecasts(ctx context.Context) {
	s.refreshForecasts(ctx)
	s.printOutput(ctx)
}

// refreshForecasts fetches the forecasts for all spots concurrently and waits for all of them.
func (s *Service) refreshForecasts(ctx context.Context) {
	var wg sync.WaitGroup
	for _, spot := range s.store.Spots() {
		wg.Go(func() { s.refreshSpot(ctx, spot) })
	}
	wg.Wait()
}

// refreshStale refreshes the spots whose snapshot is missing or older than the marine cache TTL
// and prints the output if anything changed.
func (s *Service) refreshStale(ctx context.Context) {
	stale := s.staleSpots(time.Now(), s.config.Marine.CacheTTL)
	if len(stale) == 0 {
		s.logger.Debug("all surf forecasts are current, skipping refresh")
		return
	}
	var wg sync.WaitGroup
	for _, spot := range stale {
		wg.Go(func() { s.refreshSpot(ctx, spot) })
	}
	wg.Wait()
	s.printOutput(ctx)
}

func (s *Service) staleSpots(now time.Time, maxAge time.Duration) []surf.Spot {
	var stale []surf.Spot
	for _, spot := range s.store.Spots() {
		snap, ok, err := s.store.Get(spot.ID)
		if err != nil || !ok || now.Sub(snap.UpdatedAt) >= maxAge {
			stale = append(stale, spot)
		}
	}
	return stale
}

// refreshSpot stores a fresh snapshot for a single spot. Any failure to obtain or parse the live
// series is replaced by a synthetic forecast, so a snapshot is always stored.
func (s *Service) refreshSpot(ctx context.Context, spot surf.Spot) {
	now := time.Now()
	snap := store.Snapshot{
		Spot:      spot,
		Source:    store.SourceLive,
		UpdatedAt: now,
	}

	fcast, err := s.liveForecast(ctx, spot, now)
	if err != nil {
		s.logger.Warn("failed to fetch marine forecast", logger.Err(err), "spot", spot.ID,
			"source", s.marine.Name())
		s.logger.Info("falling back to synthetic forecast", "spot", spot.ID)
		s.mockLock.Lock()
		fcast = surf.GenerateMock(spot.Location, now, s.mockRand)
		s.mockLock.Unlock()
		snap.Source = store.SourceMock
		snap.Synthetic = true
	}
	snap.Forecast = fcast
	snap.Daily = surf.AggregateDaily(fcast.Forecast, s.config.Marine.ForecastDays)

	if s.wind != nil {
		wind, err := s.wind.GetWind(ctx, spot.Location)
		if err != nil {
			s.logger.Warn("failed to fetch wind data", logger.Err(err), "spot", spot.ID,
				"source", s.wind.Name())
		} else {
			snap.Wind = wind
		}
	}

	if err = s.store.Put(snap); err != nil {
		s.logger.Error("failed to store forecast snapshot", logger.Err(err), "spot", spot.ID)
		return
	}
	s.logger.Debug("forecast updated", "spot", spot.ID, "source", snap.Source,
		"rating", fcast.Current.Quality.Rating.String(), "score", fcast.Current.Quality.Score)
}

func (s *Service) liveForecast(ctx context.Context, spot surf.Spot, now time.Time) (*surf.LocationForecast, error) {
	raw, err := s.marine.GetSeries(ctx, spot.Location)
	if err != nil {
		return nil, err
	}
	return surf.Parse(raw, spot.Location, now)
}
