package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatjain1997/meal-planner/models"
)

func TestAppendMeal_NeverOverwritesSlotEntries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	_, err := svc.AppendMeal("", "B1", models.Breakfast)
	require.NoError(t, err)

	second := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return second }
	l, err := svc.AppendMeal("", "B2", models.Breakfast)
	require.NoError(t, err)

	require.Len(t, l.Breakfast, 2)
	assert.Equal(t, "B1", l.Breakfast[0].MealID)
	assert.Equal(t, first.Format(time.RFC3339), l.Breakfast[0].Time)
	assert.Equal(t, "B2", l.Breakfast[1].MealID)
	assert.Equal(t, second.Format(time.RFC3339), l.Breakfast[1].Time)
}

func TestGet_MigratesLegacyShapeWithoutRewritingStore(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	legacy := models.DailyLog{
		Date:          "2024-01-01",
		BreakfastID:   "B1",
		BreakfastTime: "2024-01-01T08:00:00Z",
	}
	require.NoError(t, db.Create(&legacy).Error)

	l, ok := svc.Get("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, models.LoggedMeals{{MealID: "B1", Time: "2024-01-01T08:00:00Z"}}, l.Breakfast)
	assert.Empty(t, l.BreakfastID)

	// the stored row still carries the legacy shape until the next save
	var stored models.DailyLog
	require.NoError(t, db.First(&stored, "date = ?", "2024-01-01").Error)
	assert.Equal(t, "B1", stored.BreakfastID)
	assert.Empty(t, stored.Breakfast)
}

func TestSave_RewritesLegacyShapeToLists(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	legacy := models.DailyLog{Date: "2024-01-01", LunchID: "L3", LunchTime: "2024-01-01T13:00:00Z"}
	require.NoError(t, db.Create(&legacy).Error)

	l, ok := svc.Get("2024-01-01")
	require.True(t, ok)
	_, err := svc.Save(l)
	require.NoError(t, err)

	var stored models.DailyLog
	require.NoError(t, db.First(&stored, "date = ?", "2024-01-01").Error)
	assert.Empty(t, stored.LunchID)
	assert.Equal(t, models.LoggedMeals{{MealID: "L3", Time: "2024-01-01T13:00:00Z"}}, stored.Lunch)
}

func TestSave_UpsertsByDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	_, err := svc.Save(models.DailyLog{Date: "2024-01-01", ExtraCredits: 1})
	require.NoError(t, err)
	_, err = svc.Save(models.DailyLog{Date: "2024-01-01", ExtraCredits: 5, Notes: "updated"})
	require.NoError(t, err)

	rows := svc.List()
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].ExtraCredits)
	assert.Equal(t, "updated", rows[0].Notes)
}

func TestList_SortedByDateDescending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	for _, date := range []string{"2024-01-02", "2024-01-05", "2024-01-01"} {
		_, err := svc.Save(models.DailyLog{Date: date})
		require.NoError(t, err)
	}

	rows := svc.List()
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01-05", rows[0].Date)
	assert.Equal(t, "2024-01-02", rows[1].Date)
	assert.Equal(t, "2024-01-01", rows[2].Date)
}

func TestDelete_RemovesRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	_, err := svc.Save(models.DailyLog{Date: "2024-01-01"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete("2024-01-01"))

	_, ok := svc.Get("2024-01-01")
	assert.False(t, ok)
}

func TestImport_AcceptsBothShapes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db, NewEventBus())

	count, err := svc.Import([]models.DailyLog{
		{Date: "2023-12-30", BreakfastID: "B1", BreakfastTime: "2023-12-30T08:00:00Z"},
		{Date: "2023-12-31", Dinner: models.LoggedMeals{{MealID: "D2", Time: "2023-12-31T19:00:00Z"}}},
		{Date: ""}, // skipped
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	old, ok := svc.Get("2023-12-30")
	require.True(t, ok)
	assert.Equal(t, "B1", old.Breakfast[0].MealID)

	var stored models.DailyLog
	require.NoError(t, db.First(&stored, "date = ?", "2023-12-30").Error)
	assert.Empty(t, stored.BreakfastID) // import normalizes on write
}

func TestSave_PublishesLogsUpdated(t *testing.T) {
	db := setupTestDB(t)
	bus := NewEventBus()
	svc := NewLogService(db, bus)

	fired := 0
	bus.Subscribe(TopicLogsUpdated, func() { fired++ })

	_, err := svc.Save(models.DailyLog{Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}
