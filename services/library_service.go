package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/rajatjain1997/meal-planner/data"
	"github.com/rajatjain1997/meal-planner/models"
)

const chatMealCounter = "chat_meal_id"

// LibraryService serves the merged meal library: the build-time catalog plus
// chat-submitted meals, catalog first, insertion order preserved.
type LibraryService struct {
	db      *gorm.DB
	bus     *EventBus
	catalog []models.Meal
	cheats  []models.CheatMeal
	now     func() time.Time
}

func NewLibraryService(db *gorm.DB, bus *EventBus) *LibraryService {
	return &LibraryService{
		db:      db,
		bus:     bus,
		catalog: data.Meals,
		cheats:  data.CheatMeals,
		now:     time.Now,
	}
}

func (s *LibraryService) chatMeals() []models.ChatMeal {
	var rows []models.ChatMeal
	if err := s.db.Order("seq").Find(&rows).Error; err != nil {
		log.Printf("failed to load chat meals: %v", err)
		return nil
	}
	return rows
}

// Merged returns the complete library.
func (s *LibraryService) Merged() []models.Meal {
	chat := s.chatMeals()
	out := make([]models.Meal, 0, len(s.catalog)+len(chat))
	out = append(out, s.catalog...)
	for _, cm := range chat {
		out = append(out, cm.AsMeal())
	}
	return out
}

func (s *LibraryService) ListByType(t models.MealType) []models.Meal {
	var out []models.Meal
	for _, m := range s.Merged() {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

func (s *LibraryService) Resolve(id string) (models.Meal, bool) {
	for _, m := range s.catalog {
		if m.ID == id {
			return m, true
		}
	}
	var cm models.ChatMeal
	err := s.db.First(&cm, "meal_id = ?", id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("failed to resolve meal %s: %v", id, err)
		}
		return models.Meal{}, false
	}
	return cm.AsMeal(), true
}

func (s *LibraryService) CheatMeals() []models.CheatMeal {
	return s.cheats
}

func (s *LibraryService) ResolveCheat(id string) (models.CheatMeal, bool) {
	for _, cm := range s.cheats {
		if cm.ID == id {
			return cm, true
		}
	}
	return models.CheatMeal{}, false
}

// MealDraft is a new meal submitted from chat, before an id is assigned.
type MealDraft struct {
	Name        string          `json:"name" binding:"required"`
	Type        models.MealType `json:"type" binding:"required"`
	Credits     int             `json:"credits"`
	Calories    int             `json:"calories"`
	Difficulty  string          `json:"difficulty"`
	Cuisines    []string        `json:"cuisines"`
	Tags        []string        `json:"tags"`
	Ingredients []string        `json:"ingredients"`
	Steps       []string        `json:"steps"`
}

// Append assigns the next CHAT<n> id from the persisted counter, stamps the
// creation time, stores the meal and signals a library update.
func (s *LibraryService) Append(d MealDraft) (models.Meal, error) {
	if d.Difficulty == "" {
		d.Difficulty = "medium"
	}
	if len(d.Cuisines) == 0 {
		d.Cuisines = []string{"Custom"}
	}

	var cm models.ChatMeal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c models.Counter
		if err := tx.Where(models.Counter{Name: chatMealCounter}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
		c.Value++
		if err := tx.Save(&c).Error; err != nil {
			return err
		}
		cm = models.ChatMeal{
			MealID:      fmt.Sprintf("CHAT%d", c.Value),
			Seq:         c.Value,
			Name:        d.Name,
			Type:        d.Type,
			Credits:     d.Credits,
			Calories:    d.Calories,
			Difficulty:  d.Difficulty,
			Cuisines:    d.Cuisines,
			Tags:        d.Tags,
			Ingredients: d.Ingredients,
			Steps:       d.Steps,
			Source:      "chat",
			SavedAt:     s.now(),
		}
		return tx.Create(&cm).Error
	})
	if err != nil {
		return models.Meal{}, fmt.Errorf("failed to save chat meal: %w", err)
	}
	s.bus.Publish(TopicMealsUpdated)
	return cm.AsMeal(), nil
}

// Delete removes a chat-submitted meal. Catalog meals cannot be deleted.
func (s *LibraryService) Delete(id string) error {
	res := s.db.Delete(&models.ChatMeal{}, "meal_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.bus.Publish(TopicMealsUpdated)
	}
	return nil
}

// contextRecord is the compact serialization embedded in the system prompt.
// Ingredients are capped at five entries to help matching without bloating
// the prompt.
type contextRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        models.MealType `json:"type"`
	Credits     int             `json:"credits"`
	Calories    int             `json:"calories"`
	Cuisines    []string        `json:"cuisines"`
	Tags        []string        `json:"tags"`
	Ingredients []string        `json:"ingredients"`
}

// ContextJSON serializes the merged library for the assistant prompt.
func (s *LibraryService) ContextJSON() string {
	merged := s.Merged()
	records := make([]contextRecord, 0, len(merged))
	for _, m := range merged {
		ing := m.Ingredients
		if len(ing) > 5 {
			ing = ing[:5]
		}
		records = append(records, contextRecord{
			ID:          m.ID,
			Name:        m.Name,
			Type:        m.Type,
			Credits:     m.Credits,
			Calories:    m.Calories,
			Cuisines:    m.Cuisines,
			Tags:        m.Tags,
			Ingredients: ing,
		})
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Printf("failed to serialize meal library: %v", err)
		return "[]"
	}
	return string(b)
}
