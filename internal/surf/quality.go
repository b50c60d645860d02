// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

// Rating is the four-level surf quality classification.
type Rating string

const (
	RatingPoor      Rating = "poor"
	RatingFair      Rating = "fair"
	RatingGood      Rating = "good"
	RatingExcellent Rating = "excellent"
)

// Descriptions attached to each verdict. Consumers match on these, so they must not change.
const (
	DescriptionTooSmall       = "Too small"
	DescriptionExcellent      = "Epic conditions! 🔥"
	DescriptionGood           = "Great surf day! 🏄"
	DescriptionFair           = "Surfable conditions"
	DescriptionNotRecommended = "Not recommended"
)

const (
	minSurfableFeet   = 2
	offshoreMinDegree = 225
	offshoreMaxDegree = 315
)

// Ratings lists all ratings from worst to best.
var Ratings = []Rating{RatingPoor, RatingFair, RatingGood, RatingExcellent}

// QualityVerdict is the result of classifying a single hour.
type QualityVerdict struct {
	Rating      Rating `json:"rating"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Rank orders ratings: excellent 4, good 3, fair 2, poor 1. Unknown ratings rank 0.
func (r Rating) Rank() int {
	switch r {
	case RatingExcellent:
		return 4
	case RatingGood:
		return 3
	case RatingFair:
		return 2
	case RatingPoor:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the four known ratings.
func (r Rating) Valid() bool {
	return r.Rank() > 0
}

func (r Rating) String() string {
	return string(r)
}

// Classify scores one hour of conditions. The wave height is given in meters, the period in
// seconds, the wind speed as received from the data source and the wind direction in degrees.
//
// Waves below 2 ft short-circuit to poor. Otherwise height, period and wind contributions are
// summed and the total mapped to a rating. Scores are not clamped and may be negative.
func Classify(waveHeightMeters, periodSeconds, windSpeed, windDirectionDegrees float64) QualityVerdict {
	feet := MetersToFeet(waveHeightMeters)
	if feet < minSurfableFeet {
		return QualityVerdict{Rating: RatingPoor, Score: 1, Description: DescriptionTooSmall}
	}

	score := heightScore(feet) + periodScore(periodSeconds) + windScore(windSpeed, windDirectionDegrees)
	return verdictFromScore(score)
}

func heightScore(feet float64) int {
	switch {
	case feet >= 2 && feet <= 3:
		return 20
	case feet > 3 && feet <= 5:
		return 40
	case feet > 5 && feet <= 8:
		return 35
	case feet > 8:
		return 25
	}
	return 0
}

func periodScore(period float64) int {
	switch {
	case period >= 8 && period <= 10:
		return 20
	case period > 10 && period <= 14:
		return 30
	case period > 14:
		return 25
	default:
		return 10
	}
}

func windScore(speed, direction float64) int {
	offshore := IsOffshore(direction)
	switch {
	case offshore && speed < 10:
		return 30
	case offshore && speed < 15:
		return 20
	case speed < 10:
		return 15
	case speed < 20:
		return 5
	default:
		return -10
	}
}

// IsOffshore reports whether the wind direction lies in the offshore sector 225°..315°
// (SW through NW), both ends inclusive.
func IsOffshore(direction float64) bool {
	return direction >= offshoreMinDegree && direction <= offshoreMaxDegree
}

func verdictFromScore(score int) QualityVerdict {
	switch {
	case score >= 80:
		return QualityVerdict{Rating: RatingExcellent, Score: score, Description: DescriptionExcellent}
	case score >= 60:
		return QualityVerdict{Rating: RatingGood, Score: score, Description: DescriptionGood}
	case score >= 40:
		return QualityVerdict{Rating: RatingFair, Score: score, Description: DescriptionFair}
	default:
		return QualityVerdict{Rating: RatingPoor, Score: score, Description: DescriptionNotRecommended}
	}
}
