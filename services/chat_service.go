package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/utils"
)

// chatRetentionDays is the transcript retention window. Older days are
// pruned on every save.
const chatRetentionDays = 30

// ChatService persists per-day conversation transcripts.
type ChatService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db, now: time.Now}
}

// TodayMessages loads the current day's transcript. Read failures degrade to
// an empty transcript.
func (s *ChatService) TodayMessages() models.ChatMessages {
	today := utils.DateString(s.now())
	var day models.ChatDay
	err := s.db.First(&day, "date = ?", today).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("failed to load chat transcript %s: %v", today, err)
		}
		return nil
	}
	return day.Messages
}

// SaveToday replaces the current day's transcript and prunes days beyond the
// retention window.
func (s *ChatService) SaveToday(msgs models.ChatMessages) error {
	now := s.now()
	day := models.ChatDay{Date: utils.DateString(now), Messages: msgs}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&day).Error; err != nil {
			return fmt.Errorf("failed to save chat transcript %s: %w", day.Date, err)
		}
		cutoff := utils.DateString(now.AddDate(0, 0, -chatRetentionDays))
		if err := tx.Delete(&models.ChatDay{}, "date < ?", cutoff).Error; err != nil {
			return fmt.Errorf("failed to prune chat transcripts: %w", err)
		}
		return nil
	})
}

// AppendToday appends messages to the current day's transcript and saves.
func (s *ChatService) AppendToday(msgs ...models.ChatMessage) (models.ChatMessages, error) {
	all := append(s.TodayMessages(), msgs...)
	if err := s.SaveToday(all); err != nil {
		return nil, err
	}
	return all, nil
}
