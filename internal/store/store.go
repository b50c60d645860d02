// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package store keeps the latest forecast snapshot of every configured spot in memory.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/wneessen/waybar-surf/internal/surf"
	"github.com/wneessen/waybar-surf/internal/weather"
)

const (
	// SourceLive marks snapshots built from upstream marine data.
	SourceLive = "live"
	// SourceMock marks snapshots built from synthetic data.
	SourceMock = "mock"
)

var ErrUnknownSpot = errors.New("unknown spot")

// Snapshot is the processed forecast of one spot at one point in time.
type Snapshot struct {
	Spot      surf.Spot
	Forecast  *surf.LocationForecast
	Daily     []surf.DailySummary
	Wind      *weather.Data
	Source    string
	Synthetic bool
	UpdatedAt time.Time
}

// Store is safe for concurrent use. Spots are kept in configuration order.
type Store struct {
	mu        sync.RWMutex
	order     []string
	spots     map[string]surf.Spot
	snapshots map[string]Snapshot
}

func New(spots []surf.Spot) *Store {
	store := &Store{
		spots:     make(map[string]surf.Spot, len(spots)),
		snapshots: make(map[string]Snapshot, len(spots)),
	}
	for _, spot := range spots {
		if _, ok := store.spots[spot.ID]; ok {
			continue
		}
		store.order = append(store.order, spot.ID)
		store.spots[spot.ID] = spot
	}
	return store
}

// Spots returns the configured spots in configuration order.
func (s *Store) Spots() []surf.Spot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spots := make([]surf.Spot, 0, len(s.order))
	for _, id := range s.order {
		spots = append(spots, s.spots[id])
	}
	return spots
}

func (s *Store) Spot(id string) (surf.Spot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spot, ok := s.spots[id]
	if !ok {
		return surf.Spot{}, ErrUnknownSpot
	}
	return spot, nil
}

// Put replaces the snapshot of the snapshot's spot.
func (s *Store) Put(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.spots[snap.Spot.ID]; !ok {
		return ErrUnknownSpot
	}
	s.snapshots[snap.Spot.ID] = snap
	return nil
}

// Get returns the snapshot of a spot. The boolean is false if no snapshot was stored yet.
func (s *Store) Get(id string) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.spots[id]; !ok {
		return Snapshot{}, false, ErrUnknownSpot
	}
	snap, ok := s.snapshots[id]
	return snap, ok, nil
}

// All returns every stored snapshot in configuration order.
func (s *Store) All() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snaps := make([]Snapshot, 0, len(s.snapshots))
	for _, id := range s.order {
		if snap, ok := s.snapshots[id]; ok {
			snaps = append(snaps, snap)
		}
	}
	return snaps
}
