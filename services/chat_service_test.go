package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/utils"
)

func chatAt(t *testing.T, now time.Time) *ChatService {
	t.Helper()
	svc := NewChatService(setupTestDB(t))
	svc.now = func() time.Time { return now }
	return svc
}

func TestAppendToday_AccumulatesTranscript(t *testing.T) {
	svc := chatAt(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.AppendToday(models.ChatMessage{ID: "1", Role: "user", Content: "I had poha"})
	require.NoError(t, err)
	msgs, err := svc.AppendToday(models.ChatMessage{ID: "2", Role: "assistant", Content: "Noted!"})
	require.NoError(t, err)

	require.Len(t, msgs, 2)
	assert.Equal(t, "I had poha", msgs[0].Content)
	assert.Equal(t, "assistant", msgs[1].Role)

	loaded := svc.TodayMessages()
	require.Len(t, loaded, 2)
	assert.Equal(t, "2", loaded[1].ID)
}

func TestTodayMessages_EmptyWhenNoTranscript(t *testing.T) {
	svc := chatAt(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, svc.TodayMessages())
}

func TestTodayMessages_ScopedToCurrentDay(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := chatAt(t, day1)

	_, err := svc.AppendToday(models.ChatMessage{ID: "1", Role: "user", Content: "I had poha"})
	require.NoError(t, err)

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	assert.Empty(t, svc.TodayMessages(), "yesterday's transcript must not bleed into today")
}

func TestSaveToday_PrunesBeyondRetentionWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := chatAt(t, now)

	old := models.ChatDay{
		Date:     utils.DateString(now.AddDate(0, 0, -(chatRetentionDays + 1))),
		Messages: models.ChatMessages{{ID: "old", Role: "user", Content: "ancient"}},
	}
	edge := models.ChatDay{
		Date:     utils.DateString(now.AddDate(0, 0, -chatRetentionDays)),
		Messages: models.ChatMessages{{ID: "edge", Role: "user", Content: "still kept"}},
	}
	require.NoError(t, svc.db.Create(&old).Error)
	require.NoError(t, svc.db.Create(&edge).Error)

	require.NoError(t, svc.SaveToday(models.ChatMessages{{ID: "1", Role: "user", Content: "hi"}}))

	var dates []string
	require.NoError(t, svc.db.Model(&models.ChatDay{}).Order("date").Pluck("date", &dates).Error)
	assert.Equal(t, []string{edge.Date, utils.DateString(now)}, dates)
}

func TestSaveToday_ReplacesExistingTranscript(t *testing.T) {
	svc := chatAt(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	require.NoError(t, svc.SaveToday(models.ChatMessages{
		{ID: "1", Role: "user", Content: "first"},
		{ID: "2", Role: "assistant", Content: "second"},
	}))
	require.NoError(t, svc.SaveToday(models.ChatMessages{
		{ID: "3", Role: "user", Content: "rewritten"},
	}))

	msgs := svc.TodayMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "rewritten", msgs[0].Content)
}
