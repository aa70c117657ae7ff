package models

// MealPlan is the committed intent for a date: exactly one meal id per slot.
// Distinct from DailyLog, which records what actually happened.
type MealPlan struct {
	Date        string `gorm:"primaryKey;size:10" json:"date"` // ISO date "YYYY-MM-DD"
	BreakfastID string `gorm:"size:32" json:"breakfastId"`
	LunchID     string `gorm:"size:32" json:"lunchId"`
	DinnerID    string `gorm:"size:32" json:"dinnerId"`
	CommittedAt string `json:"committedAt,omitempty"` // RFC 3339
}

// MealPlanOption is one randomly generated (breakfast, lunch, dinner) triple.
type MealPlanOption struct {
	BreakfastID string `json:"breakfastId"`
	LunchID     string `json:"lunchId"`
	DinnerID    string `json:"dinnerId"`
}
