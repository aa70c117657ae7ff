package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrated_LegacyFieldsBecomeSingleEntryLists(t *testing.T) {
	l := DailyLog{
		Date:          "2024-01-01",
		BreakfastID:   "B1",
		BreakfastTime: "2024-01-01T08:30:00Z",
		LunchID:       "L2",
		LunchTime:     "2024-01-01T13:00:00Z",
	}

	m := l.Migrated()

	assert.Equal(t, LoggedMeals{{MealID: "B1", Time: "2024-01-01T08:30:00Z"}}, m.Breakfast)
	assert.Equal(t, LoggedMeals{{MealID: "L2", Time: "2024-01-01T13:00:00Z"}}, m.Lunch)
	assert.Empty(t, m.Dinner)
	assert.Empty(t, m.BreakfastID)
	assert.Empty(t, m.BreakfastTime)
	assert.Empty(t, m.LunchID)
}

func TestMigrated_Idempotent(t *testing.T) {
	l := DailyLog{
		Date:         "2024-01-01",
		DinnerID:     "D3",
		DinnerTime:   "2024-01-01T19:00:00Z",
		ExtraCredits: 2,
		Notes:        "late dinner",
	}

	once := l.Migrated()
	twice := once.Migrated()

	assert.Equal(t, once, twice)
	assert.Len(t, twice.Dinner, 1)
}

func TestMigrated_ListShapeWinsOverLegacy(t *testing.T) {
	l := DailyLog{
		Date:          "2024-01-01",
		Breakfast:     LoggedMeals{{MealID: "B5", Time: "2024-01-01T09:00:00Z"}},
		BreakfastID:   "B1", // stale legacy leftovers must not be appended
		BreakfastTime: "2024-01-01T08:00:00Z",
	}

	m := l.Migrated()

	assert.Equal(t, LoggedMeals{{MealID: "B5", Time: "2024-01-01T09:00:00Z"}}, m.Breakfast)
	assert.Empty(t, m.BreakfastID)
}
