package utils

import (
	"time"

	"github.com/rajatjain1997/meal-planner/models"
)

const DateLayout = "2006-01-02"

func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func NextDayDateString(t time.Time) string {
	return t.AddDate(0, 0, 1).Format(DateLayout)
}

// SlotForHour maps a device-clock hour onto a ledger slot: before 11:00 is
// breakfast, before 16:00 is lunch, everything else is dinner. This is the
// rule used when registering assistant-reported meals and it deliberately
// ignores the meal's own declared type.
func SlotForHour(hour int) models.MealType {
	switch {
	case hour < 11:
		return models.Breakfast
	case hour < 16:
		return models.Lunch
	default:
		return models.Dinner
	}
}

// CurrentMealType labels the time of day for display and prompts.
// Breakfast 5:00-10:59, lunch 11:00-15:59, dinner otherwise.
func CurrentMealType(t time.Time) models.MealType {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 11:
		return models.Breakfast
	case hour >= 11 && hour < 16:
		return models.Lunch
	default:
		return models.Dinner
	}
}

// TimeOfDayLabel is the coarse label embedded in the assistant system prompt.
func TimeOfDayLabel(hour int) string {
	switch {
	case hour < 11:
		return "morning (breakfast time)"
	case hour < 16:
		return "afternoon (lunch time)"
	default:
		return "evening (dinner time)"
	}
}
