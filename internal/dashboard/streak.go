package dashboard

import (
	"sort"
	"time"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
)

type Streak struct {
	Current int `json:"currentStreak"`
	Best    int `json:"bestStreak"`
}

// CalculateStreak computes the current run of consecutive activity days ending
// today and the longest run ever. Dates are reduced to UTC calendar days and
// deduplicated. Days after today are ignored.
func CalculateStreak(activityDates []time.Time, today time.Time) Streak {
	today = records.Day(today)

	seen := make(map[time.Time]struct{}, len(activityDates))
	days := make([]time.Time, 0, len(activityDates))
	for _, d := range activityDates {
		day := records.Day(d)
		if day.After(today) {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	if len(days) == 0 {
		return Streak{}
	}

	return Streak{
		Current: currentStreak(days, today),
		Best:    bestStreak(days),
	}
}

// currentStreak expects distinct days, none after today.
func currentStreak(days []time.Time, today time.Time) int {
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	streak := 0
	expected := today
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func bestStreak(days []time.Time) int {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
