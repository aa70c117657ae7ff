package models

// CheatMeal is a catalog entry the user "buys" with earned credits.
// CreditCost is a positive cost, not a signed credit value.
type CheatMeal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"` // "snacks", "desserts", "drinks", "fast-food"
	CreditCost  int    `json:"creditCost"`
	Calories    int    `json:"calories"`
	Description string `json:"description,omitempty"`
}
