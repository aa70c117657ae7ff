package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/services"
	"github.com/rajatjain1997/meal-planner/utils"
)

type ChatController struct {
	Assistant *services.AssistantService
	Chats     *services.ChatService
	Logs      *services.LogService
	Plans     *services.PlanService
	Library   *services.LibraryService
	Now       func() time.Time
}

func NewChatController(
	assistant *services.AssistantService,
	chats *services.ChatService,
	logs *services.LogService,
	plans *services.PlanService,
	library *services.LibraryService,
) *ChatController {
	return &ChatController{
		Assistant: assistant,
		Chats:     chats,
		Logs:      logs,
		Plans:     plans,
		Library:   library,
		Now:       time.Now,
	}
}

func (cc *ChatController) Today(c *gin.Context) {
	msgs := cc.Chats.TodayMessages()
	if msgs == nil {
		msgs = models.ChatMessages{}
	}
	c.JSON(http.StatusOK, msgs)
}

// Turn runs one conversation round trip: builds history from today's
// transcript, calls the assistant with retry, persists both sides and returns
// the assistant message with its structured payload.
func (cc *ChatController) Turn(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history := cc.Chats.TodayMessages()
	reply, err := cc.Assistant.CallWithRetry(body.Message, history)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAPIKey):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	now := cc.Now().Format(time.RFC3339)
	userMsg := models.ChatMessage{
		ID: uuid.NewString(), Role: "user", Content: body.Message, Timestamp: now,
	}
	assistantMsg := models.ChatMessage{
		ID: uuid.NewString(), Role: "assistant", Content: reply.Message, Timestamp: now,
		Reply: reply,
	}
	if _, err := cc.Chats.AppendToday(userMsg, assistantMsg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assistantMsg)
}

// AcceptMeal registers an assistant-reported "already had" meal into the
// ledger. The slot is chosen by the device clock, not by the meal's declared
// type: before 11:00 breakfast, before 16:00 lunch, else dinner.
func (cc *ChatController) AcceptMeal(c *gin.Context) {
	var meal models.AlreadyHadMeal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealID, err := cc.resolveOrAppend(meal.MealID, meal.IsNew, services.MealDraft{
		Name:        meal.Name,
		Type:        storageType(meal.Type),
		Credits:     meal.Credits,
		Calories:    meal.Calories,
		Tags:        cheatTags(meal.Type),
		Ingredients: meal.Ingredients,
		Steps:       meal.Steps,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slot := utils.SlotForHour(cc.Now().Hour())
	l, err := cc.Logs.AppendMeal("", mealID, slot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"log": l, "mealId": mealID, "slot": slot})
}

// AcceptSuggestion merges an assistant suggestion into the plan for today,
// or for tomorrow when it is 20:00 or later. A "cheat"-typed suggestion lands
// in the dinner slot.
func (cc *ChatController) AcceptSuggestion(c *gin.Context) {
	var meal models.SuggestedMeal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealID, err := cc.resolveOrAppend(meal.MealID, meal.IsNew, services.MealDraft{
		Name:        meal.Name,
		Type:        storageType(meal.Type),
		Credits:     meal.Credits,
		Calories:    meal.Calories,
		Tags:        cheatTags(meal.Type),
		Ingredients: meal.Ingredients,
		Steps:       meal.Steps,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := cc.Now()
	targetDate := utils.DateString(now)
	if now.Hour() >= 20 {
		targetDate = utils.NextDayDateString(now)
	}

	plan, ok := cc.Plans.Get(targetDate)
	if !ok {
		plan = models.MealPlan{Date: targetDate, CommittedAt: now.Format(time.RFC3339)}
	}
	switch storageType(meal.Type) {
	case models.Breakfast:
		plan.BreakfastID = mealID
	case models.Lunch:
		plan.LunchID = mealID
	default:
		plan.DinnerID = mealID
	}

	saved, err := cc.Plans.Save(plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": saved, "mealId": mealID})
}

// resolveOrAppend returns an existing library id or appends a new chat meal.
func (cc *ChatController) resolveOrAppend(mealID *string, isNew bool, draft services.MealDraft) (string, error) {
	if !isNew && mealID != nil && *mealID != "" {
		if _, ok := cc.Library.Resolve(*mealID); ok {
			return *mealID, nil
		}
	}
	meal, err := cc.Library.Append(draft)
	if err != nil {
		return "", err
	}
	return meal.ID, nil
}

// storageType maps the assistant's four-valued type onto a library slot type:
// cheat meals are stored under dinner.
func storageType(t string) models.MealType {
	switch t {
	case "breakfast":
		return models.Breakfast
	case "lunch":
		return models.Lunch
	default:
		return models.Dinner
	}
}

func cheatTags(t string) []string {
	if t == "cheat" {
		return []string{"cheat"}
	}
	return nil
}
