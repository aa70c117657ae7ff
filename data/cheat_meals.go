package data

import "github.com/rajatjain1997/meal-planner/models"

// CheatMeals is the fixed catalog of indulgences purchasable with credits.
var CheatMeals = []models.CheatMeal{
	// Snacks
	{ID: "C1", Name: "Potato Chips (1 bag)", Category: "snacks", CreditCost: 6, Calories: 150,
		Description: "Crispy, salty, and oh-so-tempting"},
	{ID: "C2", Name: "Namkeen Mix (1 cup)", Category: "snacks", CreditCost: 7, Calories: 200,
		Description: "Assorted fried snacks"},
	{ID: "C3", Name: "Samosa (2 pcs)", Category: "snacks", CreditCost: 8, Calories: 300,
		Description: "Deep-fried pastry with spiced filling"},
	{ID: "C4", Name: "Pakora (5-6 pcs)", Category: "snacks", CreditCost: 7, Calories: 280,
		Description: "Fried fritters with vegetables"},
	{ID: "C5", Name: "Bhujia / Sev (1 cup)", Category: "snacks", CreditCost: 5, Calories: 180,
		Description: "Crispy gram flour noodles"},

	// Desserts
	{ID: "C6", Name: "Ice Cream (1 scoop)", Category: "desserts", CreditCost: 5, Calories: 200,
		Description: "Creamy frozen treat"},
	{ID: "C7", Name: "Gulab Jamun (2 pcs)", Category: "desserts", CreditCost: 8, Calories: 250,
		Description: "Syrup-soaked milk dumplings"},
	{ID: "C8", Name: "Chocolate Bar", Category: "desserts", CreditCost: 6, Calories: 230,
		Description: "A full bar, not a square"},
	{ID: "C9", Name: "Jalebi (3 pcs)", Category: "desserts", CreditCost: 9, Calories: 300,
		Description: "Deep-fried spirals dunked in sugar syrup"},

	// Drinks
	{ID: "C10", Name: "Sweetened Cold Coffee", Category: "drinks", CreditCost: 5, Calories: 220,
		Description: "Blended with ice cream"},
	{ID: "C11", Name: "Soft Drink (500ml)", Category: "drinks", CreditCost: 4, Calories: 210,
		Description: "Fizzy sugar water"},

	// Fast food
	{ID: "C12", Name: "Cheese Pizza (2 slices)", Category: "fast-food", CreditCost: 10, Calories: 500,
		Description: "Gooey, greasy, glorious"},
	{ID: "C13", Name: "Veg Burger with Fries", Category: "fast-food", CreditCost: 10, Calories: 550,
		Description: "The whole combo"},
	{ID: "C14", Name: "Instant Noodles (1 pack)", Category: "fast-food", CreditCost: 6, Calories: 380,
		Description: "Midnight classic"},
}
