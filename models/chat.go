package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AlreadyHadMeal is an assistant-reported meal the user says they already ate.
// MealID is nil when the assistant could not match it to the library.
type AlreadyHadMeal struct {
	MealID      *string  `json:"mealId"`
	Name        string   `json:"name"`
	Credits     int      `json:"credits"`
	Type        string   `json:"type"` // "breakfast"|"lunch"|"dinner"|"cheat"
	IsNew       bool     `json:"isNew"`
	Calories    int      `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// SuggestedMeal is an assistant suggestion for an upcoming slot.
type SuggestedMeal struct {
	MealID      *string  `json:"mealId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "breakfast"|"lunch"|"dinner"|"cheat"
	Credits     int      `json:"credits"`
	Calories    int      `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	IsNew       bool     `json:"isNew"`
	Description string   `json:"description,omitempty"`
}

// ChatReply is the structured JSON payload extracted from an assistant turn.
type ChatReply struct {
	Message     string           `json:"message"`
	AlreadyHad  []AlreadyHadMeal `json:"alreadyHad"`
	Suggestions []SuggestedMeal  `json:"suggestions"`
}

// ChatMessage is one conversation entry within a day's transcript.
type ChatMessage struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"` // "user"|"assistant"
	Content   string     `json:"content"`
	Timestamp string     `json:"timestamp"` // RFC 3339
	Reply     *ChatReply `json:"response,omitempty"`
}

// ChatMessages stores a day's transcript as a JSON text column.
type ChatMessages []ChatMessage

func (m ChatMessages) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *ChatMessages) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for ChatMessages", value)
	}
}

// ChatDay holds the transcript for one calendar day. Days older than the
// retention window are pruned on every save.
type ChatDay struct {
	Date     string       `gorm:"primaryKey;size:10" json:"date"`
	Messages ChatMessages `gorm:"type:text" json:"messages"`
}
