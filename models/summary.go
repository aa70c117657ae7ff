package models

// DailySummary is derived from a DailyLog by resolving logged meal ids against
// the merged library. It is never stored.
//
// Invariant: NetCredits == MealCredits + ExtraCredits - CheatCreditsUsed.
// Unresolved meal ids contribute zero to every aggregate.
type DailySummary struct {
	TotalCredits     int    `json:"totalCredits"` // meal + extra
	MealCredits      int    `json:"mealCredits"`
	ExtraCredits     int    `json:"extraCredits"`
	CheatCreditsUsed int    `json:"cheatCreditsUsed"`
	NetCredits       int    `json:"netCredits"`
	TotalCalories    int    `json:"totalCalories"`
	BreakfastMeals   []Meal `json:"breakfastMeals"`
	LunchMeals       []Meal `json:"lunchMeals"`
	DinnerMeals      []Meal `json:"dinnerMeals"`
}
