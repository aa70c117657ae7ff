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

// LogService is the daily ledger store: one record per date, slot lists of
// logged meals, credit adjustments and notes. Legacy single-meal records are
// migrated to the list shape as a read-time projection; the stored row is
// only rewritten on the next save.
type LogService struct {
	db  *gorm.DB
	bus *EventBus
	now func() time.Time
}

func NewLogService(db *gorm.DB, bus *EventBus) *LogService {
	return &LogService{db: db, bus: bus, now: time.Now}
}

// Get returns the migrated projection for a date. Read failures degrade to
// absent so the caller never sees a blocking storage error.
func (s *LogService) Get(date string) (models.DailyLog, bool) {
	var l models.DailyLog
	err := s.db.First(&l, "date = ?", date).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("failed to load daily log %s: %v", date, err)
		}
		return models.DailyLog{}, false
	}
	return l.Migrated(), true
}

// List returns all records sorted by date descending, each migrated.
func (s *LogService) List() []models.DailyLog {
	var rows []models.DailyLog
	if err := s.db.Order("date DESC").Find(&rows).Error; err != nil {
		log.Printf("failed to load daily logs: %v", err)
		return nil
	}
	for i := range rows {
		rows[i] = rows[i].Migrated()
	}
	return rows
}

// Save upserts by date. The record is normalized to the list shape first, so
// a save after a legacy read rewrites the stored form.
func (s *LogService) Save(l models.DailyLog) (models.DailyLog, error) {
	if l.Date == "" {
		return models.DailyLog{}, fmt.Errorf("daily log date is required")
	}
	l = l.Migrated()
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&l).Error; err != nil {
		return models.DailyLog{}, fmt.Errorf("failed to save daily log %s: %w", l.Date, err)
	}
	s.bus.Publish(TopicLogsUpdated)
	return l, nil
}

// AppendMeal is the primary "I ate X" write path. It appends a new entry to
// the slot's list, never overwriting prior entries, so a slot can hold
// multiple meals per day. An empty date means today.
func (s *LogService) AppendMeal(date, mealID string, slot models.MealType) (models.DailyLog, error) {
	now := s.now()
	if date == "" {
		date = utils.DateString(now)
	}
	l, _ := s.Get(date)
	l.Date = date
	entries := l.Slot(slot)
	*entries = append(*entries, models.LoggedMeal{
		MealID: mealID,
		Time:   now.Format(time.RFC3339),
	})
	return s.Save(l)
}

func (s *LogService) Delete(date string) error {
	if err := s.db.Delete(&models.DailyLog{}, "date = ?", date).Error; err != nil {
		return fmt.Errorf("failed to delete daily log %s: %w", date, err)
	}
	s.bus.Publish(TopicLogsUpdated)
	return nil
}

// Import upserts previously exported records. Entries may
// arrive in either shape; each is migrated before storage. Returns the number
// of records written.
func (s *LogService) Import(logs []models.DailyLog) (int, error) {
	count := 0
	for _, l := range logs {
		if l.Date == "" {
			continue
		}
		l = l.Migrated()
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&l).Error; err != nil {
			return count, fmt.Errorf("failed to import daily log %s: %w", l.Date, err)
		}
		count++
	}
	if count > 0 {
		s.bus.Publish(TopicLogsUpdated)
	}
	return count, nil
}
