// Package data holds the build-time meal catalogs.
package data

import "github.com/rajatjain1997/meal-planner/models"

// Meals is the fixed vegetarian meal library. Entries are never mutated at
// runtime; chat-submitted meals live in their own store and id namespace.
var Meals = []models.Meal{
	// Breakfast
	{
		ID: "B1", Name: "Moong Dal Chilla", Type: models.Breakfast,
		Credits: 3, Calories: 280, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"high-protein", "savory"},
		Ingredients: []string{"moong dal", "onion", "green chili", "coriander", "oil"},
		Steps: []string{
			"Soak moong dal for 2 hours and grind to a batter.",
			"Mix in chopped onion, chili and coriander.",
			"Spread on a hot tawa and cook both sides with a little oil.",
		},
	},
	{
		ID: "B2", Name: "Vegetable Poha", Type: models.Breakfast,
		Credits: 2, Calories: 250, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"light", "quick"},
		Ingredients: []string{"flattened rice", "peas", "onion", "mustard seeds", "turmeric", "peanuts"},
		Steps: []string{
			"Rinse the poha and let it soften.",
			"Temper mustard seeds, saute onion and peas.",
			"Fold in poha with turmeric and top with peanuts.",
		},
	},
	{
		ID: "B3", Name: "Idli with Sambar", Type: models.Breakfast,
		Credits: 3, Calories: 300, Difficulty: "medium",
		Cuisines: []string{"South Indian"}, Tags: []string{"steamed", "fermented"},
		Ingredients: []string{"idli batter", "toor dal", "tamarind", "sambar powder", "vegetables"},
		Steps: []string{
			"Steam idlis from fermented batter.",
			"Simmer dal with vegetables, tamarind and sambar powder.",
			"Serve hot together.",
		},
	},
	{
		ID: "B4", Name: "Paneer Bhurji with Roti", Type: models.Breakfast,
		Credits: 3, Calories: 350, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"high-protein"},
		Ingredients: []string{"paneer", "onion", "tomato", "whole wheat roti", "spices"},
		Steps: []string{
			"Crumble paneer into sauteed onion and tomato masala.",
			"Cook until dry and fragrant.",
			"Serve with fresh rotis.",
		},
	},
	{
		ID: "B5", Name: "Oats Upma", Type: models.Breakfast,
		Credits: 2, Calories: 220, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"fiber", "quick"},
		Ingredients: []string{"rolled oats", "carrot", "beans", "curry leaves", "mustard seeds"},
		Steps: []string{
			"Dry roast the oats.",
			"Temper spices, saute vegetables, add oats and water.",
			"Cook until soft.",
		},
	},
	{
		ID: "B6", Name: "Fruit and Yogurt Bowl", Type: models.Breakfast,
		Credits: 1, Calories: 200, Difficulty: "easy",
		Cuisines: []string{"Continental"}, Tags: []string{"bowl", "no-cook"},
		Ingredients: []string{"yogurt", "banana", "apple", "honey", "seeds"},
		Steps: []string{
			"Chop fruit over chilled yogurt.",
			"Drizzle honey and scatter seeds.",
		},
	},

	// Lunch
	{
		ID: "L1", Name: "Rajma Chawal", Type: models.Lunch,
		Credits: 3, Calories: 450, Difficulty: "medium",
		Cuisines: []string{"North Indian"}, Tags: []string{"high-protein", "comfort"},
		Ingredients: []string{"kidney beans", "rice", "onion", "tomato", "ginger", "garam masala"},
		Steps: []string{
			"Pressure cook soaked rajma until soft.",
			"Simmer in onion-tomato gravy with spices.",
			"Serve over steamed rice.",
		},
	},
	{
		ID: "L2", Name: "Palak Paneer with Roti", Type: models.Lunch,
		Credits: 3, Calories: 400, Difficulty: "medium",
		Cuisines: []string{"North Indian"}, Tags: []string{"iron-rich", "high-protein"},
		Ingredients: []string{"spinach", "paneer", "garlic", "cream", "whole wheat roti"},
		Steps: []string{
			"Blanch and puree the spinach.",
			"Simmer with garlic and spices, add paneer cubes.",
			"Finish with a spoon of cream.",
		},
	},
	{
		ID: "L3", Name: "Vegetable Khichdi", Type: models.Lunch,
		Credits: 2, Calories: 380, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"one-pot", "comfort"},
		Ingredients: []string{"rice", "moong dal", "ghee", "cumin", "mixed vegetables"},
		Steps: []string{
			"Pressure cook rice, dal and vegetables together.",
			"Temper with ghee and cumin.",
		},
	},
	{
		ID: "L4", Name: "Chole with Brown Rice", Type: models.Lunch,
		Credits: 3, Calories: 430, Difficulty: "medium",
		Cuisines: []string{"North Indian"}, Tags: []string{"high-protein", "fiber"},
		Ingredients: []string{"chickpeas", "brown rice", "onion", "tomato", "chole masala"},
		Steps: []string{
			"Pressure cook soaked chickpeas.",
			"Cook in a spiced onion-tomato base.",
			"Serve with brown rice.",
		},
	},
	{
		ID: "L5", Name: "Curd Rice with Pickle", Type: models.Lunch,
		Credits: 1, Calories: 320, Difficulty: "easy",
		Cuisines: []string{"South Indian"}, Tags: []string{"cooling", "probiotic"},
		Ingredients: []string{"rice", "curd", "mustard seeds", "curry leaves", "pickle"},
		Steps: []string{
			"Mix cooked rice with whisked curd.",
			"Temper mustard seeds and curry leaves over it.",
		},
	},
	{
		ID: "L6", Name: "Quinoa Vegetable Salad", Type: models.Lunch,
		Credits: 2, Calories: 300, Difficulty: "easy",
		Cuisines: []string{"Continental"}, Tags: []string{"salad", "bowl"},
		Ingredients: []string{"quinoa", "cucumber", "tomato", "lemon", "olive oil", "chickpeas"},
		Steps: []string{
			"Cook and cool the quinoa.",
			"Toss with chopped vegetables, chickpeas and lemon dressing.",
		},
	},

	// Dinner
	{
		ID: "D1", Name: "Dal Tadka with Jeera Rice", Type: models.Dinner,
		Credits: 2, Calories: 400, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"comfort", "high-protein"},
		Ingredients: []string{"toor dal", "rice", "cumin", "garlic", "ghee", "tomato"},
		Steps: []string{
			"Pressure cook dal and whisk smooth.",
			"Pour over a garlic-cumin tadka.",
			"Serve with jeera rice.",
		},
	},
	{
		ID: "D2", Name: "Vegetable Stir-Fry with Tofu", Type: models.Dinner,
		Credits: 3, Calories: 320, Difficulty: "easy",
		Cuisines: []string{"Asian"}, Tags: []string{"high-protein", "low-carb"},
		Ingredients: []string{"tofu", "broccoli", "bell pepper", "soy sauce", "ginger", "sesame oil"},
		Steps: []string{
			"Sear tofu cubes until golden.",
			"Stir-fry vegetables on high heat with ginger.",
			"Toss everything in soy and sesame.",
		},
	},
	{
		ID: "D3", Name: "Roti with Mixed Vegetable Sabzi", Type: models.Dinner,
		Credits: 2, Calories: 350, Difficulty: "easy",
		Cuisines: []string{"Indian"}, Tags: []string{"homestyle"},
		Ingredients: []string{"whole wheat roti", "cauliflower", "peas", "potato", "spices"},
		Steps: []string{
			"Saute vegetables with cumin and turmeric.",
			"Cover and cook until tender.",
			"Serve with hot rotis.",
		},
	},
	{
		ID: "D4", Name: "Vegetable Soup with Garlic Bread", Type: models.Dinner,
		Credits: 1, Calories: 250, Difficulty: "easy",
		Cuisines: []string{"Continental"}, Tags: []string{"soup", "light"},
		Ingredients: []string{"carrot", "celery", "tomato", "vegetable stock", "bread", "garlic"},
		Steps: []string{
			"Simmer vegetables in stock and blend lightly.",
			"Toast garlic bread alongside.",
		},
	},
	{
		ID: "D5", Name: "Paneer Tikka with Salad", Type: models.Dinner,
		Credits: 3, Calories: 380, Difficulty: "medium",
		Cuisines: []string{"North Indian"}, Tags: []string{"grilled", "high-protein"},
		Ingredients: []string{"paneer", "yogurt", "tikka masala", "bell pepper", "onion", "salad greens"},
		Steps: []string{
			"Marinate paneer and vegetables in spiced yogurt.",
			"Grill until charred at the edges.",
			"Serve over a crunchy salad.",
		},
	},
	{
		ID: "D6", Name: "Masala Dosa", Type: models.Dinner,
		Credits: 2, Calories: 420, Difficulty: "hard",
		Cuisines: []string{"South Indian"}, Tags: []string{"fermented", "crispy"},
		Ingredients: []string{"dosa batter", "potato", "onion", "mustard seeds", "chutney"},
		Steps: []string{
			"Spread batter thin on a hot tawa.",
			"Fill with spiced potato masala.",
			"Fold and serve with chutney.",
		},
	},
}
