package dashboard

import (
	"math"
	"time"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/records/meals"
)

const (
	CategoryMeals        = "Meals"
	CategoryExercise     = "Exercise"
	CategoryBodyTracking = "Body Tracking"
	CategoryReflection   = "Reflection"
)

const (
	MessagePerfect        = "Perfect day! Every goal completed, keep it up!"
	MessageExcellent      = "Excellent work, you are almost there!"
	MessageGood           = "Good progress today, keep going!"
	MessageOnTrack        = "You are on track, a few more goals to go."
	MessageGettingStarted = "Getting started, every step counts."
	MessageGreatStart     = "Great start! Log a little more to reach your goals."
	MessageNewDay         = "A new day, a fresh start. Log your first activity!"
	MessageFallback       = "We could not load your progress right now, please try again later."
)

// goalMealTypes are the meals that count towards the daily meals goal. Snacks do not.
var goalMealTypes = []meals.Type{meals.TypeMorning, meals.TypeLunch, meals.TypeDinner}

// DailyCounts are the non deleted records of one user on one calendar day.
type DailyCounts struct {
	MealTypes   map[meals.Type]int
	Exercises   int
	BodyRecords int
	Diaries     int
}

type CategoryStatus struct {
	Name       string  `json:"name"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Achievement struct {
	Date        string           `json:"date"`
	OverallRate float64          `json:"overallRate"`
	Message     string           `json:"message"`
	Categories  []CategoryStatus `json:"categories"`
}

// Score rates the day's records against the fixed daily goals.
func Score(day time.Time, counts DailyCounts) Achievement {
	mealsDone := 0
	for _, mealType := range goalMealTypes {
		if counts.MealTypes[mealType] > 0 {
			mealsDone++
		}
	}

	categories := []CategoryStatus{
		newCategoryStatus(CategoryMeals, mealsDone, len(goalMealTypes)),
		newCategoryStatus(CategoryExercise, counts.Exercises, 1),
		newCategoryStatus(CategoryBodyTracking, counts.BodyRecords, 1),
		newCategoryStatus(CategoryReflection, counts.Diaries, 1),
	}

	completed, total := 0, 0
	for _, c := range categories {
		completed += c.Completed
		total += c.Total
	}

	overall := percentage(completed, total)
	return Achievement{
		Date:        records.Day(day).Format(records.DayLayout),
		OverallRate: overall,
		Message:     Message(overall),
		Categories:  categories,
	}
}

// FallbackAchievement is served when the day's records could not be read.
func FallbackAchievement(day time.Time) Achievement {
	return Achievement{
		Date:        records.Day(day).Format(records.DayLayout),
		OverallRate: 0,
		Message:     MessageFallback,
		Categories:  []CategoryStatus{},
	}
}

// Message picks the motivational message for an overall completion rate.
func Message(rate float64) string {
	switch {
	case rate >= 100:
		return MessagePerfect
	case rate >= 80:
		return MessageExcellent
	case rate >= 60:
		return MessageGood
	case rate >= 40:
		return MessageOnTrack
	case rate >= 20:
		return MessageGettingStarted
	case rate > 0:
		return MessageGreatStart
	default:
		return MessageNewDay
	}
}

func newCategoryStatus(name string, completed, total int) CategoryStatus {
	completed = max(0, min(completed, total))
	return CategoryStatus{
		Name:       name,
		Completed:  completed,
		Total:      total,
		Percentage: percentage(completed, total),
	}
}

// percentage with one decimal place.
func percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
