package services

import "github.com/rajatjain1997/meal-planner/models"

// CalculateDailySummary derives the aggregate view of a ledger record. It is
// a pure function: the record is migrated first, every logged id is resolved
// through the supplied lookup, and an id the library no longer knows simply
// contributes zero to every total.
func CalculateDailySummary(l models.DailyLog, resolve func(id string) (models.Meal, bool)) models.DailySummary {
	l = l.Migrated()

	var sum models.DailySummary
	collect := func(entries models.LoggedMeals) []models.Meal {
		var meals []models.Meal
		for _, e := range entries {
			m, ok := resolve(e.MealID)
			if !ok {
				continue
			}
			meals = append(meals, m)
			sum.MealCredits += m.Credits
			sum.TotalCalories += m.Calories
		}
		return meals
	}

	sum.BreakfastMeals = collect(l.Breakfast)
	sum.LunchMeals = collect(l.Lunch)
	sum.DinnerMeals = collect(l.Dinner)

	sum.ExtraCredits = l.ExtraCredits
	sum.CheatCreditsUsed = l.CheatCreditsUsed
	sum.TotalCredits = sum.MealCredits + sum.ExtraCredits
	sum.NetCredits = sum.TotalCredits - sum.CheatCreditsUsed
	return sum
}
