// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/wneessen/waybar-surf/internal/chart"
	"github.com/wneessen/waybar-surf/internal/config"
	"github.com/wneessen/waybar-surf/internal/logger"
	"github.com/wneessen/waybar-surf/internal/store"
	"github.com/wneessen/waybar-surf/internal/surf"
)

// Handler serves read-only views of the snapshot store.
type Handler struct {
	store *store.Store
	log   *logger.Logger
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type spotResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Location  surf.Location      `json:"location"`
	Current   *surf.ForecastHour `json:"current,omitempty"`
	Source    string             `json:"source,omitempty"`
	Synthetic bool               `json:"synthetic"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

type forecastResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Source    string                 `json:"source"`
	Synthetic bool                   `json:"synthetic"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Forecast  *surf.LocationForecast `json:"forecast"`
}

func NewHandler(store *store.Store, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "pong"})
}

func (h *Handler) ListSpots(w http.ResponseWriter, _ *http.Request) {
	spots := h.store.Spots()
	response := make([]spotResponse, 0, len(spots))
	for _, spot := range spots {
		entry := spotResponse{ID: spot.ID, Name: spot.Name, Location: spot.Location}
		if snap, ok, _ := h.store.Get(spot.ID); ok && snap.Forecast != nil {
			current := snap.Forecast.Current
			updated := snap.UpdatedAt
			entry.Current = &current
			entry.Source = snap.Source
			entry.Synthetic = snap.Synthetic
			entry.UpdatedAt = &updated
		}
		response = append(response, entry)
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, forecastResponse{
		ID:        snap.Spot.ID,
		Name:      snap.Spot.Name,
		Source:    snap.Source,
		Synthetic: snap.Synthetic,
		UpdatedAt: snap.UpdatedAt,
		Forecast:  snap.Forecast,
	})
}

// GetDaily expects ?days={1..16}, defaulting to 7
func (h *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	days, err := daysFromQuery(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, surf.AggregateDaily(snap.Forecast.Forecast, days))
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	days, err := daysFromQuery(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	var start time.Time
	if len(snap.Forecast.Forecast) > 0 {
		start = snap.Forecast.Forecast[0].Time
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = chart.RenderDaily(w, snap.Spot, start, surf.AggregateDaily(snap.Forecast.Forecast, days)); err != nil {
		h.log.Error("failed to render chart", logger.Err(err), "spot", snap.Spot.ID)
	}
}

// snapshot looks up the snapshot of the requested spot and writes a 404 if it is unknown or
// not loaded yet.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (store.Snapshot, bool) {
	id := mux.Vars(r)["id"]
	snap, ok, err := h.store.Get(id)
	switch {
	case errors.Is(err, store.ErrUnknownSpot):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown spot: %s", id)})
		return snap, false
	case !ok || snap.Forecast == nil:
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("no forecast loaded for spot: %s", id)})
		return snap, false
	}
	return snap, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("failed to encode JSON response", logger.Err(err))
	}
}

func daysFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return surf.DefaultDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > config.MaxForecastDays {
		return 0, fmt.Errorf("days must be a number between 1 and %d", config.MaxForecastDays)
	}
	return days, nil
}
