package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LoggedMeal is one "I ate X" entry inside a day's slot list.
type LoggedMeal struct {
	MealID string `json:"mealId"`
	Time   string `json:"time"` // RFC 3339 timestamp
}

// LoggedMeals stores an ordered slot list as a JSON text column.
type LoggedMeals []LoggedMeal

func (l LoggedMeals) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LoggedMeals) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for LoggedMeals", value)
	}
}

// DailyLog records what was actually eaten on a date. One record per date.
//
// Two shapes exist: the current one (ordered slot lists, multiple meals per
// slot per day) and a legacy one where each slot held at most one meal id and
// timestamp directly on the record. The legacy fields are only consulted when
// the slot list is absent; see Migrated.
type DailyLog struct {
	Date string `gorm:"primaryKey;size:10" json:"date"` // ISO date "YYYY-MM-DD"

	Breakfast LoggedMeals `gorm:"type:text" json:"breakfast,omitempty"`
	Lunch     LoggedMeals `gorm:"type:text" json:"lunch,omitempty"`
	Dinner    LoggedMeals `gorm:"type:text" json:"dinner,omitempty"`

	// legacy single-meal fields
	BreakfastID   string `gorm:"size:32" json:"breakfastId,omitempty"`
	LunchID       string `gorm:"size:32" json:"lunchId,omitempty"`
	DinnerID      string `gorm:"size:32" json:"dinnerId,omitempty"`
	BreakfastTime string `json:"breakfastTime,omitempty"`
	LunchTime     string `json:"lunchTime,omitempty"`
	DinnerTime    string `json:"dinnerTime,omitempty"`

	ExtraCredits     int    `json:"extraCredits,omitempty"`
	CheatCreditsUsed int    `json:"cheatCreditsUsed,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// Migrated projects the record onto the list-based shape. When a slot list is
// already present it wins and the legacy fields for that slot are dropped;
// otherwise a set legacy id becomes the single entry of the list. Running it
// twice yields the same result, it never duplicates entries.
func (l DailyLog) Migrated() DailyLog {
	out := l
	if len(out.Breakfast) == 0 && out.BreakfastID != "" {
		out.Breakfast = LoggedMeals{{MealID: out.BreakfastID, Time: out.BreakfastTime}}
	}
	if len(out.Lunch) == 0 && out.LunchID != "" {
		out.Lunch = LoggedMeals{{MealID: out.LunchID, Time: out.LunchTime}}
	}
	if len(out.Dinner) == 0 && out.DinnerID != "" {
		out.Dinner = LoggedMeals{{MealID: out.DinnerID, Time: out.DinnerTime}}
	}
	out.BreakfastID, out.BreakfastTime = "", ""
	out.LunchID, out.LunchTime = "", ""
	out.DinnerID, out.DinnerTime = "", ""
	return out
}

// Slot returns the list for a meal slot. Callers should migrate first.
func (l *DailyLog) Slot(t MealType) *LoggedMeals {
	switch t {
	case Breakfast:
		return &l.Breakfast
	case Lunch:
		return &l.Lunch
	default:
		return &l.Dinner
	}
}
