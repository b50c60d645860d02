// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/waybar-surf/internal/surf"
)

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// RatingIcons maps each surf rating to its emoji
var RatingIcons = map[surf.Rating]string{
	surf.RatingExcellent: "🔥",
	surf.RatingGood:      "🏄",
	surf.RatingFair:      "🌊",
	surf.RatingPoor:      "💤",
}

// RatingColors maps each surf rating to its display color
var RatingColors = map[surf.Rating]string{
	surf.RatingExcellent: "#ffcc00",
	surf.RatingGood:      "#00ff88",
	surf.RatingFair:      "#00aaff",
	surf.RatingPoor:      "#666666",
}

var ratingLabels = map[surf.Rating]localize.MsgID{
	surf.RatingExcellent: "Excellent",
	surf.RatingGood:      "Good",
	surf.RatingFair:      "Fair",
	surf.RatingPoor:      "Poor",
}

var i18nVars = map[string]localize.MsgID{
	"waves":           "Waves",
	"swell":           "Swell",
	"wind":            "Wind",
	"period":          "Period",
	"rating":          "Rating",
	"score":           "Score",
	"besthour":        "Best hour",
	"updated":         "Updated",
	"synthetic":       "synthetic data",
	"sunrise":         "Sunrise",
	"sunset":          "Sunset",
	"moonphase":       "Moonphase",
	"new moon":        "New moon",
	"waxing crescent": "Waxing crescent",
	"first quarter":   "First quarter",
	"waxing gibbous":  "Waxing gibbous",
	"full moon":       "Full moon",
	"waning gibbous":  "Waning gibbous",
	"third quarter":   "Third quarter",
	"waning crescent": "Waning crescent",
}

var windDirIcons = map[string]string{
	"N":   "↑",
	"NNE": "↗",
	"NE":  "↗",
	"ENE": "↗",
	"E":   "→",
	"ESE": "↘",
	"SE":  "↘",
	"SSE": "↘",
	"S":   "↓",
	"SSW": "↙",
	"SW":  "↙",
	"WSW": "↙",
	"W":   "←",
	"WNW": "↖",
	"NW":  "↖",
	"NNW": "↖",
}
