// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/wneessen/waybar-surf/internal/surf"
	"github.com/wneessen/waybar-surf/internal/weather"
)

func TestNew(t *testing.T) {
	t.Run("spots keep configuration order", func(t *testing.T) {
		store := New(surf.DefaultSpots())
		spots := store.Spots()
		if len(spots) != 2 {
			t.Fatalf("expected 2 spots, got %d", len(spots))
		}
		if spots[0].ID != "smith-point" || spots[1].ID != "brick" {
			t.Errorf("unexpected spot order: %s, %s", spots[0].ID, spots[1].ID)
		}
	})
	t.Run("duplicate spot IDs are ignored", func(t *testing.T) {
		spots := append(surf.DefaultSpots(), surf.Spot{ID: "brick", Name: "Other"})
		store := New(spots)
		if len(store.Spots()) != 2 {
			t.Fatalf("expected 2 spots, got %d", len(store.Spots()))
		}
		spot, err := store.Spot("brick")
		if err != nil {
			t.Fatalf("failed to get spot: %s", err)
		}
		if spot.Name == "Other" {
			t.Error("expected the first spot definition to win")
		}
	})
}

func TestStore_PutGet(t *testing.T) {
	store := New(surf.DefaultSpots())
	spot, _ := store.Spot("brick")

	t.Run("no snapshot before the first put", func(t *testing.T) {
		_, ok, err := store.Get("brick")
		if err != nil {
			t.Fatalf("failed to get snapshot: %s", err)
		}
		if ok {
			t.Error("expected no snapshot")
		}
	})
	t.Run("stored snapshot is returned", func(t *testing.T) {
		now := time.Now()
		if err := store.Put(Snapshot{Spot: spot, Source: SourceMock, Synthetic: true, UpdatedAt: now}); err != nil {
			t.Fatalf("failed to put snapshot: %s", err)
		}
		snap, ok, err := store.Get("brick")
		if err != nil || !ok {
			t.Fatalf("expected snapshot, got ok=%t err=%v", ok, err)
		}
		if !snap.Synthetic || snap.Source != SourceMock {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
		if len(store.All()) != 1 {
			t.Errorf("expected 1 snapshot, got %d", len(store.All()))
		}
	})
	t.Run("wind data is kept with the snapshot", func(t *testing.T) {
		wind := weather.NewData()
		if err := store.Put(Snapshot{Spot: spot, Wind: wind}); err != nil {
			t.Fatalf("failed to put snapshot: %s", err)
		}
		snap, _, _ := store.Get("brick")
		if snap.Wind != wind {
			t.Error("expected wind data to be stored with the snapshot")
		}
	})
	t.Run("unknown spots are rejected", func(t *testing.T) {
		if err := store.Put(Snapshot{Spot: surf.Spot{ID: "pipeline"}}); !errors.Is(err, ErrUnknownSpot) {
			t.Errorf("expected ErrUnknownSpot, got %v", err)
		}
		if _, _, err := store.Get("pipeline"); !errors.Is(err, ErrUnknownSpot) {
			t.Errorf("expected ErrUnknownSpot, got %v", err)
		}
		if _, err := store.Spot("pipeline"); !errors.Is(err, ErrUnknownSpot) {
			t.Errorf("expected ErrUnknownSpot, got %v", err)
		}
	})
}

func TestStore_Concurrency(t *testing.T) {
	store := New(surf.DefaultSpots())
	spots := store.Spots()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Put(Snapshot{Spot: spots[i%2], UpdatedAt: time.Now()})
		}(i)
		go func() {
			defer wg.Done()
			_ = store.All()
		}()
	}
	wg.Wait()
	if len(store.All()) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(store.All()))
	}
}
