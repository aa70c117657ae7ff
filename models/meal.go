package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// A catalog entry from the built-in library.
// Catalog meals are fixed at build time and never mutated.
type Meal struct {
	ID          string     `json:"id"` // e.g. "B1", "L3", "D10", "CHAT4"
	Name        string     `json:"name"`
	Type        MealType   `json:"type"`
	Credits     int        `json:"credits"` // signed; healthy meals earn 1-3
	Calories    int        `json:"calories"` // approximate per serving
	Difficulty  string     `json:"difficulty"` // "easy"|"medium"|"hard"
	Cuisines    StringList `json:"cuisines"`
	Tags        StringList `json:"tags"`
	Ingredients StringList `json:"ingredients"`
	Steps       StringList `json:"steps"`
}

// ChatMeal is a user-submitted meal synthesized from assistant chat,
// appended to the library at runtime under the CHAT<n> id namespace.
type ChatMeal struct {
	MealID      string     `gorm:"primaryKey;size:32" json:"id"`
	Seq         int        `gorm:"index" json:"-"` // counter value, preserves insertion order
	Name        string     `gorm:"not null" json:"name"`
	Type        MealType   `gorm:"size:16;not null" json:"type"`
	Credits     int        `json:"credits"`
	Calories    int        `json:"calories"`
	Difficulty  string     `gorm:"size:16" json:"difficulty"`
	Cuisines    StringList `gorm:"type:text" json:"cuisines"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	Ingredients StringList `gorm:"type:text" json:"ingredients"`
	Steps       StringList `gorm:"type:text" json:"steps"`
	Source      string     `gorm:"size:16" json:"source"` // always "chat"
	SavedAt     time.Time  `json:"savedAt"`
}

func (m ChatMeal) AsMeal() Meal {
	return Meal{
		ID:          m.MealID,
		Name:        m.Name,
		Type:        m.Type,
		Credits:     m.Credits,
		Calories:    m.Calories,
		Difficulty:  m.Difficulty,
		Cuisines:    m.Cuisines,
		Tags:        m.Tags,
		Ingredients: m.Ingredients,
		Steps:       m.Steps,
	}
}

// StringList stores a []string as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
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
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}
