// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

// Spot is a tracked surf location.
type Spot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// DefaultSpots returns the spots tracked when nothing else is configured.
func DefaultSpots() []Spot {
	return []Spot{
		{ID: "smith-point", Name: "Smith Point", Location: Location{Latitude: 40.5897, Longitude: -72.8675}},
		{ID: "brick", Name: "Brick", Location: Location{Latitude: 40.0573, Longitude: -74.1097}},
	}
}
