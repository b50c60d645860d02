// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package surf

import (
	"testing"
	"time"
)

func testHours(count int, fn func(i int) (float64, Rating)) []ForecastHour {
	hours := make([]ForecastHour, count)
	for i := range hours {
		height, rating := fn(i)
		hours[i] = ForecastHour{
			Time:       refTime.Add(time.Duration(i) * time.Hour),
			WaveHeight: height,
			Quality:    QualityVerdict{Rating: rating},
		}
	}
	return hours
}

func TestAggregateDaily(t *testing.T) {
	t.Run("short forecast yields defaulted trailing days", func(t *testing.T) {
		hours := testHours(10, func(i int) (float64, Rating) {
			if i == 4 {
				return 5.2, RatingGood
			}
			return 2.1, RatingFair
		})
		days := AggregateDaily(hours, 7)
		if len(days) != 7 {
			t.Fatalf("expected 7 summaries, got %d", len(days))
		}
		if days[0].MaxWaveHeight != 5.2 {
			t.Errorf("expected day 0 max wave height 5.2, got %f", days[0].MaxWaveHeight)
		}
		if days[0].BestQuality != RatingGood {
			t.Errorf("expected day 0 best quality good, got %s", days[0].BestQuality)
		}
		if days[0].Hours != 10 {
			t.Errorf("expected day 0 to cover 10 hours, got %d", days[0].Hours)
		}
		for _, day := range days[1:] {
			if day.MaxWaveHeight != 0 || day.BestQuality != RatingPoor || day.Hours != 0 {
				t.Errorf("expected day %d to default to {0 poor}, got %+v", day.Day, day)
			}
		}
	})
	t.Run("full week uses 24 hour windows", func(t *testing.T) {
		hours := testHours(168, func(i int) (float64, Rating) {
			day := i / 24
			switch {
			case day == 2 && i%24 == 23:
				return 9.5, RatingExcellent
			case day == 3 && i%24 == 0:
				return 1.0, RatingPoor
			}
			return float64(day), RatingFair
		})
		days := AggregateDaily(hours, 0)
		if len(days) != DefaultDays {
			t.Fatalf("expected %d summaries, got %d", DefaultDays, len(days))
		}
		if days[2].MaxWaveHeight != 9.5 || days[2].BestQuality != RatingExcellent {
			t.Errorf("expected day 2 to be {9.5 excellent}, got %+v", days[2])
		}
		if days[3].MaxWaveHeight != 3 || days[3].BestQuality != RatingFair {
			t.Errorf("expected day 3 to be {3 fair}, got %+v", days[3])
		}
		for _, day := range days {
			if day.Hours != 24 {
				t.Errorf("expected day %d to cover 24 hours, got %d", day.Day, day.Hours)
			}
		}
	})
	t.Run("empty forecast yields all defaults", func(t *testing.T) {
		days := AggregateDaily(nil, 3)
		if len(days) != 3 {
			t.Fatalf("expected 3 summaries, got %d", len(days))
		}
		for _, day := range days {
			if day.MaxWaveHeight != 0 || day.BestQuality != RatingPoor {
				t.Errorf("expected day %d to default to {0 poor}, got %+v", day.Day, day)
			}
		}
	})
}

func TestBestHour(t *testing.T) {
	hours := testHours(30, func(i int) (float64, Rating) {
		switch i {
		case 3:
			return 6, RatingGood
		case 7:
			return 4.5, RatingExcellent
		case 8:
			return 4.5, RatingExcellent
		case 10:
			return 10, RatingFair
		}
		return 2, RatingPoor
	})
	best, ok := BestHour(hours, 0)
	if !ok {
		t.Fatal("expected a best hour for day 0")
	}
	if !best.Time.Equal(hours[7].Time) {
		t.Errorf("expected the earliest excellent hour to win, got %s", best.Time)
	}
	if _, ok = BestHour(hours, 1); !ok {
		t.Error("expected a best hour for the partial day 1")
	}
	if _, ok = BestHour(hours, 2); ok {
		t.Error("expected no best hour for day 2")
	}
	if _, ok = BestHour(hours, -1); ok {
		t.Error("expected no best hour for a negative day")
	}
}

func TestFindEpic(t *testing.T) {
	hours := testHours(30, func(i int) (float64, Rating) {
		switch i {
		case 0, 3, 26:
			return 4, RatingExcellent
		case 1:
			return 4, RatingGood
		}
		return 1, RatingPoor
	})
	epic, ok := FindEpic(hours, refTime, time.Hour*24)
	if !ok {
		t.Fatal("expected an epic hour")
	}
	if !epic.Time.Equal(hours[3].Time) {
		t.Errorf("expected epic hour at %s, got %s", hours[3].Time, epic.Time)
	}
	if _, ok = FindEpic(hours, refTime, time.Hour*2); ok {
		t.Error("expected no epic hour within 2 hours")
	}
	if _, ok = FindEpic(nil, refTime, time.Hour*24); ok {
		t.Error("expected no epic hour in an empty forecast")
	}
}

func TestEpicMessage(t *testing.T) {
	tests := []struct {
		name  string
		spots []string
		want  string
	}{
		{"no spots", nil, ""},
		{"single spot", []string{"Brick"}, "🔥 Epic surf coming to Brick!"},
		{"two spots", []string{"Smith Point", "Brick"}, "🔥 Epic surf coming to Smith Point and Brick!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EpicMessage(tc.spots); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
