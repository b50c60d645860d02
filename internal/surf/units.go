// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

import "math"

const (
	feetPerMeter           = 3.28084
	knotsPerMeterPerSecond = 1.94384
	compassSectorDegrees   = 22.5
	compassPointCount      = 16
)

var compassPoints = [compassPointCount]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// MetersToFeet converts meters to feet, rounded to one decimal.
func MetersToFeet(meters float64) float64 {
	return roundTo(meters*feetPerMeter, 1)
}

// MetersPerSecondToKnots converts m/s to knots. The result is not rounded.
func MetersPerSecondToKnots(speed float64) float64 {
	return speed * knotsPerMeterPerSecond
}

// CompassFromDegrees returns the 16-point compass abbreviation for a bearing in degrees.
// Bearings outside 0..360 wrap around.
func CompassFromDegrees(degrees float64) string {
	idx := int(roundHalfUp(degrees/compassSectorDegrees)) % compassPointCount
	if idx < 0 {
		idx += compassPointCount
	}
	return compassPoints[idx]
}

// roundHalfUp rounds halves towards positive infinity.
func roundHalfUp(val float64) float64 {
	return math.Floor(val + 0.5)
}

func roundTo(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return roundHalfUp(val*pow) / pow
}
