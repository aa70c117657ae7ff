package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rajatjain1997/meal-planner/models"
)

// ErrInsufficientCatalog is returned when a meal-type pool is empty and no
// plan option can be generated at all.
var ErrInsufficientCatalog = errors.New("not enough meals in the library to generate plan options")

const (
	planOptionCount = 3
	// optionAttemptCap bounds the uniqueness-rejection loop. Once spent,
	// remaining options are filled allowing repeats, so small pools can
	// never hang the generator.
	optionAttemptCap = 100
)

// PlanService is the forward-planning store: one committed meal per slot per
// date, independent of the ledger.
type PlanService struct {
	db      *gorm.DB
	bus     *EventBus
	library *LibraryService
	rng     *rand.Rand
}

func NewPlanService(db *gorm.DB, bus *EventBus, library *LibraryService) *PlanService {
	return &PlanService{
		db:      db,
		bus:     bus,
		library: library,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *PlanService) Get(date string) (models.MealPlan, bool) {
	var p models.MealPlan
	err := s.db.First(&p, "date = ?", date).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("failed to load meal plan %s: %v", date, err)
		}
		return models.MealPlan{}, false
	}
	return p, true
}

func (s *PlanService) List() []models.MealPlan {
	var rows []models.MealPlan
	if err := s.db.Order("date DESC").Find(&rows).Error; err != nil {
		log.Printf("failed to load meal plans: %v", err)
		return nil
	}
	return rows
}

func (s *PlanService) Save(p models.MealPlan) (models.MealPlan, error) {
	if p.Date == "" {
		return models.MealPlan{}, fmt.Errorf("meal plan date is required")
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error; err != nil {
		return models.MealPlan{}, fmt.Errorf("failed to save meal plan %s: %w", p.Date, err)
	}
	s.bus.Publish(TopicPlansUpdated)
	return p, nil
}

func (s *PlanService) Delete(date string) error {
	if err := s.db.Delete(&models.MealPlan{}, "date = ?", date).Error; err != nil {
		return fmt.Errorf("failed to delete meal plan %s: %w", date, err)
	}
	s.bus.Publish(TopicPlansUpdated)
	return nil
}

// GenerateOptions draws three (breakfast, lunch, dinner) triples uniformly
// from the merged per-type pools. Triples are pairwise distinct while the
// attempt budget lasts; after that repeats are permitted rather than looping
// forever on a pool too small to supply three unique combinations.
func (s *PlanService) GenerateOptions() ([]models.MealPlanOption, error) {
	breakfasts := s.library.ListByType(models.Breakfast)
	lunches := s.library.ListByType(models.Lunch)
	dinners := s.library.ListByType(models.Dinner)
	if len(breakfasts) == 0 || len(lunches) == 0 || len(dinners) == 0 {
		return nil, ErrInsufficientCatalog
	}

	pick := func() models.MealPlanOption {
		return models.MealPlanOption{
			BreakfastID: breakfasts[s.rng.Intn(len(breakfasts))].ID,
			LunchID:     lunches[s.rng.Intn(len(lunches))].ID,
			DinnerID:    dinners[s.rng.Intn(len(dinners))].ID,
		}
	}

	options := make([]models.MealPlanOption, 0, planOptionCount)
	seen := make(map[models.MealPlanOption]struct{})
	for attempts := 0; len(options) < planOptionCount && attempts < optionAttemptCap; attempts++ {
		opt := pick()
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		options = append(options, opt)
	}
	for len(options) < planOptionCount {
		options = append(options, pick())
	}
	return options, nil
}
